package builder

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"nakram/coach-builder/internal/domain"
	"nakram/coach-builder/internal/nutrition"
	"nakram/coach-builder/internal/pdf"
	"nakram/coach-builder/internal/service"
)

// Meal slots in document order.
const (
	MealBreakfast = "Breakfast"
	MealLunch     = "Lunch"
	MealDinner    = "Dinner"
	MealSnacks    = "Snacks"
)

var mealOrder = []string{MealBreakfast, MealLunch, MealDinner, MealSnacks}

// MealPlanBuilder is one meal-plan-building session. It shares the client
// fields and lifecycle with PlanBuilder but logs the sentinel payload and a
// prefixed course name, so the row classifies as a meal plan on the admin
// side without a schema change.
type MealPlanBuilder struct {
	state      State
	client     ClientDetails
	courseName string
	meals      map[string]string
	notes      string
	target     *nutrition.Result
	status     string
}

// NewMealPlanBuilder starts an idle session.
func NewMealPlanBuilder() *MealPlanBuilder {
	return &MealPlanBuilder{state: StateIdle, meals: map[string]string{}}
}

func (b *MealPlanBuilder) State() State { return b.state }

func (b *MealPlanBuilder) Status() string { return b.status }

func (b *MealPlanBuilder) Client() ClientDetails { return b.client }

func (b *MealPlanBuilder) CourseName() string { return b.courseName }

// Meal returns the text of one slot.
func (b *MealPlanBuilder) Meal(slot string) string { return b.meals[slot] }

func (b *MealPlanBuilder) Notes() string { return b.notes }

func (b *MealPlanBuilder) Target() *nutrition.Result { return b.target }

func (b *MealPlanBuilder) edit() {
	b.state = StateEditing
}

// SetClient fills in the client details.
func (b *MealPlanBuilder) SetClient(c ClientDetails) {
	b.edit()
	b.client = c
}

// SetCourseName sets the plan label. The stored row gets the meal plan
// prefix; the label here is the unprefixed name the coach typed.
func (b *MealPlanBuilder) SetCourseName(name string) {
	b.edit()
	b.courseName = name
}

// SetMeal writes one slot's text. Blank text clears the slot.
func (b *MealPlanBuilder) SetMeal(slot, text string) {
	b.edit()
	if strings.TrimSpace(text) == "" {
		delete(b.meals, slot)
		return
	}
	b.meals[slot] = text
}

// SetNotes writes the free-form notes block.
func (b *MealPlanBuilder) SetNotes(text string) {
	b.edit()
	b.notes = text
}

// ApplyTarget attaches a calculated calorie/protein target. The target is
// informational; it prints on the document but is not stored server-side.
func (b *MealPlanBuilder) ApplyTarget(r nutrition.Result) {
	b.edit()
	b.target = &r
}

// CalculateTarget derives the target from the current client details plus the
// chosen activity level and goal, and attaches it.
func (b *MealPlanBuilder) CalculateTarget(activity nutrition.ActivityLevel, goal nutrition.Goal) (nutrition.Result, error) {
	res, err := nutrition.Calculate(nutrition.Input{
		Age:      int(b.client.Age),
		Gender:   b.client.Gender,
		HeightCm: b.client.HeightCm,
		WeightKg: b.client.WeightKg,
		Activity: activity,
		Goal:     goal,
	})
	if err != nil {
		return nutrition.Result{}, err
	}
	b.ApplyTarget(res)
	return res, nil
}

// validate runs the fixed order: session, client fields, course name, at
// least one filled meal slot.
func (b *MealPlanBuilder) validate(session *domain.Session) error {
	if session == nil || session.Code == "" {
		return ErrMissingSession
	}
	if err := b.client.validate(); err != nil {
		return err
	}
	if strings.TrimSpace(b.courseName) == "" {
		return errors.New("Course name is required")
	}
	if len(b.meals) == 0 {
		return errors.New("Please add at least one meal")
	}
	return nil
}

// Document renders the printable meal plan subtree. Meal slots print in the
// fixed breakfast-first order regardless of entry order.
func (b *MealPlanBuilder) Document(session *domain.Session) pdf.Document {
	var sections []pdf.Section
	if b.target != nil {
		sections = append(sections, pdf.Section{
			Title: "Daily Target",
			Body:  b.target.Label(),
		})
	}
	for _, slot := range mealOrder {
		if text, ok := b.meals[slot]; ok {
			sections = append(sections, pdf.Section{Title: slot, Body: text})
		}
	}
	if strings.TrimSpace(b.notes) != "" {
		sections = append(sections, pdf.Section{Title: "Notes", Body: b.notes})
	}

	return pdf.Document{
		Title:      "Meal Plan",
		ClientName: b.client.Name,
		CoachLine:  coachLine(session),
		DetailLine: b.client.detailLine(),
		CourseName: domain.MealPlanCoursePrefix + b.courseName,
		Sections:   sections,
	}
}

// Submit validates, exports the PDF, then posts the sentinel log row. Same
// failure contract as PlanBuilder.Submit: any failure keeps the field state.
func (b *MealPlanBuilder) Submit(ctx context.Context, deps SubmitDeps) (*Result, error) {
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
		CourseName:     domain.MealPlanCoursePrefix + strings.TrimSpace(b.courseName),
		Exercises:      domain.MealPlanPayload(),
	})
	if err != nil {
		return nil, b.fail(err)
	}

	b.status = fmt.Sprintf("Saved meal plan for %s", strings.TrimSpace(b.client.Name))
	b.state = StateSuccess
	b.reset()
	return &Result{Row: row, Filename: filename, ShareURL: shareURL}, nil
}

func (b *MealPlanBuilder) fail(err error) error {
	b.status = err.Error()
	b.state = StateEditing
	return err
}

func (b *MealPlanBuilder) reset() {
	b.client = ClientDetails{}
	b.courseName = ""
	b.meals = map[string]string{}
	b.notes = ""
	b.target = nil
}
