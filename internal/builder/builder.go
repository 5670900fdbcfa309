// Package builder holds the editing-session state machines behind the coach
// CLI: the workout plan builder and the meal plan builder. A session moves
// Idle -> Editing -> Validating -> Submitting -> Success or Failed, and every
// failure path returns to Editing with the accumulated field state intact:
// a rejected submission never loses the operator's work.
package builder

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"

	"nakram/coach-builder/internal/domain"
	"nakram/coach-builder/internal/pdf"
	"nakram/coach-builder/internal/service"
	"nakram/coach-builder/internal/storage"

	"github.com/google/uuid"
)

// State of an editing session.
type State string

const (
	StateIdle       State = "idle"
	StateEditing    State = "editing"
	StateValidating State = "validating"
	StateSubmitting State = "submitting"
	StateSuccess    State = "success"
	StateFailed     State = "failed"
)

// Defaults applied when an exercise is first selected. Each selection's
// counts are independently editable afterwards.
const (
	DefaultSets = 3
	DefaultReps = 10
)

// ErrMissingSession is returned when submitting without a logged-in coach.
var ErrMissingSession = errors.New("Missing session")

// Submitter is the API call a submission ends with.
type Submitter interface {
	CreateWorkoutLog(ctx context.Context, accessCode string, req service.CreateLogRequest) (*domain.WorkoutLog, error)
}

// SubmitDeps carries everything a submission touches. WriteFile lands the
// exported PDF locally; Archive is optional and best-effort.
type SubmitDeps struct {
	Session *domain.Session
	API     Submitter
	// WriteFile persists the exported PDF under the derived filename.
	WriteFile func(filename string, data []byte) error
	// Archive, when non-nil, receives a copy of the exported PDF.
	Archive storage.FileStorage
}

// Result reports a successful submission.
type Result struct {
	Row      *domain.WorkoutLog
	Filename string
	ShareURL string // set only when archiving succeeded
}

// ClientDetails are the fields shared by both builders. Zero values mean
// "not filled in yet".
type ClientDetails struct {
	Name     string
	Gender   string
	Age      float64
	HeightCm float64
	WeightKg float64
}

// validate runs the fixed sequential checks common to both builders. Only
// the first failing check is surfaced.
func (c *ClientDetails) validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return errors.New("Client name is required")
	}
	if strings.TrimSpace(c.Gender) == "" {
		return errors.New("Client gender is required")
	}
	if c.Age < 1 {
		return errors.New("Valid client age is required")
	}
	if c.HeightCm < 1 {
		return errors.New("Valid client height is required")
	}
	if c.WeightKg < 1 {
		return errors.New("Valid client weight is required")
	}
	return nil
}

// detailLine renders the client summary line of the printable document.
func (c *ClientDetails) detailLine() string {
	parts := []string{}
	if c.Gender != "" {
		parts = append(parts, "Gender: "+c.Gender)
	}
	if c.Age >= 1 {
		parts = append(parts, fmt.Sprintf("Age: %g", c.Age))
	}
	if c.HeightCm >= 1 {
		parts = append(parts, fmt.Sprintf("Height: %g cm", c.HeightCm))
	}
	if c.WeightKg >= 1 {
		parts = append(parts, fmt.Sprintf("Weight: %g kg", c.WeightKg))
	}
	return strings.Join(parts, " | ")
}

func coachLine(session *domain.Session) string {
	if session == nil {
		return ""
	}
	name := session.CoachName
	if name == "" {
		name = session.Code
	}
	return "Coach: " + name
}

// archiveCopy uploads the exported PDF and returns a share link. Failures
// here never fail the submission; the local file already exists.
func archiveCopy(ctx context.Context, deps SubmitDeps, filename string, data []byte) string {
	if deps.Archive == nil {
		return ""
	}
	key := fmt.Sprintf("plans/%s/%s-%s", deps.Session.Code, uuid.NewString(), filename)
	if err := deps.Archive.UploadObject(ctx, key, "application/pdf", bytes.NewReader(data)); err != nil {
		return ""
	}
	url, err := deps.Archive.GeneratePresignedDownloadURL(ctx, key, storage.DefaultPresignedURLExpiry)
	if err != nil {
		return ""
	}
	return url
}

// PlanBuilder is one workout-building session.
type PlanBuilder struct {
	state      State
	client     ClientDetails
	courseName string
	selected   []domain.ExerciseDetail
	status     string
}

// NewPlanBuilder starts an idle session.
func NewPlanBuilder() *PlanBuilder {
	return &PlanBuilder{state: StateIdle}
}

func (b *PlanBuilder) State() State { return b.state }

func (b *PlanBuilder) Status() string { return b.status }

func (b *PlanBuilder) Client() ClientDetails { return b.client }

func (b *PlanBuilder) CourseName() string { return b.courseName }

func (b *PlanBuilder) Selected() []domain.ExerciseDetail { return b.selected }

func (b *PlanBuilder) edit() {
	b.state = StateEditing
}

// SetClient fills in the client details.
func (b *PlanBuilder) SetClient(c ClientDetails) {
	b.edit()
	b.client = c
}

// SetCourseName sets the coach-chosen plan label.
func (b *PlanBuilder) SetCourseName(name string) {
	b.edit()
	b.courseName = name
}

// Toggle selects or deselects an exercise by id. First selection applies the
// 3x10 defaults; deselection removes the entry and its edited counts.
func (b *PlanBuilder) Toggle(ex domain.ExerciseDetail) {
	b.edit()
	for i, cur := range b.selected {
		if cur.ID == ex.ID {
			b.selected = append(b.selected[:i], b.selected[i+1:]...)
			return
		}
	}
	ex.Sets = DefaultSets
	ex.Reps = DefaultReps
	b.selected = append(b.selected, ex)
}

// SelectAll replaces the selection with the given list, defaults applied.
func (b *PlanBuilder) SelectAll(exercises []domain.ExerciseDetail) {
	b.edit()
	b.selected = make([]domain.ExerciseDetail, 0, len(exercises))
	for _, ex := range exercises {
		ex.Sets = DefaultSets
		ex.Reps = DefaultReps
		b.selected = append(b.selected, ex)
	}
}

// Clear empties the selection.
func (b *PlanBuilder) Clear() {
	b.edit()
	b.selected = nil
}

// SetSets edits one selection's set count. Unknown ids are ignored.
func (b *PlanBuilder) SetSets(id string, sets int) {
	b.edit()
	for i := range b.selected {
		if b.selected[i].ID == id {
			b.selected[i].Sets = sets
			return
		}
	}
}

// SetReps edits one selection's rep count. Unknown ids are ignored.
func (b *PlanBuilder) SetReps(id string, reps int) {
	b.edit()
	for i := range b.selected {
		if b.selected[i].ID == id {
			b.selected[i].Reps = reps
			return
		}
	}
}

// validate runs the fixed order: session, client fields, course name,
// non-empty selection.
func (b *PlanBuilder) validate(session *domain.Session) error {
	if session == nil || session.Code == "" {
		return ErrMissingSession
	}
	if err := b.client.validate(); err != nil {
		return err
	}
	if strings.TrimSpace(b.courseName) == "" {
		return errors.New("Course name is required")
	}
	if len(b.selected) == 0 {
		return errors.New("Select at least one exercise")
	}
	return nil
}

// Document renders the printable plan subtree.
func (b *PlanBuilder) Document(session *domain.Session) pdf.Document {
	return pdf.Document{
		Title:      "Workout Plan",
		ClientName: b.client.Name,
		CoachLine:  coachLine(session),
		DetailLine: b.client.detailLine(),
		CourseName: b.courseName,
		Exercises:  b.selected,
	}
}

// Submit validates, exports the PDF, then posts the log. The export is local
// and independent of the server round trip; an API failure leaves the
// already-written PDF in place and the field state intact for resubmission.
func (b *PlanBuilder) Submit(ctx context.Context, deps SubmitDeps) (*Result, error) {
	b.state = StateValidating
	b.status = ""

	if err := b.validate(deps.Session); err != nil {
		return nil, b.fail(err)
	}

	b.state = StateSubmitting

	data, err := pdf.Render(b.Document(deps.Session))
	if err != nil {
		return nil, b.fail(err)
	}
	filename := pdf.Filename(b.client.Name)
	if err := deps.WriteFile(filename, data); err != nil {
		return nil, b.fail(err)
	}

	shareURL := archiveCopy(ctx, deps, filename, data)

	age, height, weight := b.client.Age, b.client.HeightCm, b.client.WeightKg
	row, err := deps.API.CreateWorkoutLog(ctx, deps.Session.Code, service.CreateLogRequest{
		CoachCode:      deps.Session.Code,
		ClientName:     strings.TrimSpace(b.client.Name),
		ClientGender:   strings.TrimSpace(b.client.Gender),
		ClientAge:      &age,
		ClientHeightCm: &height,
		ClientWeightKg: &weight,
		CourseName:     strings.TrimSpace(b.courseName),
		Exercises:      domain.NewExerciseList(b.selected),
	})
	if err != nil {
		return nil, b.fail(err)
	}

	b.status = "Saved workout log"
	b.state = StateSuccess
	b.reset()
	return &Result{Row: row, Filename: filename, ShareURL: shareURL}, nil
}

// fail records the failure and returns to Editing with field state intact.
func (b *PlanBuilder) fail(err error) error {
	b.status = err.Error()
	b.state = StateEditing
	return err
}

// reset clears the form for the next plan. Runs only after success.
func (b *PlanBuilder) reset() {
	b.client = ClientDetails{}
	b.courseName = ""
	b.selected = nil
}
