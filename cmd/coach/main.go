// Command coach is the terminal front end for coaches and admins: login with
// an access code, browse the exercise library, build and export workout and
// meal plans, and (for the admin) read the commission dashboard.
//
// Session and custom exercises persist in a local SQLite file between
// invocations; everything else goes through the HTTP API.
package main

import (
	"context"
	"database/sql"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"nakram/coach-builder/internal/builder"
	"nakram/coach-builder/internal/catalog"
	"nakram/coach-builder/internal/client"
	"nakram/coach-builder/internal/config"
	"nakram/coach-builder/internal/domain"
	"nakram/coach-builder/internal/local"
	"nakram/coach-builder/internal/nutrition"
	"nakram/coach-builder/internal/report"
	"nakram/coach-builder/internal/storage"
)

const usageText = `Usage: coach <command> [flags]

Commands:
  login <code>      Log in with an access code
  logout            Forget the stored session
  whoami            Show the stored session
  ping              Check the server is reachable
  exercises         List the exercise library (built-in plus your custom entries)
  calories          Calculate a calorie/protein target
  build             Build, export, and log a workout plan
  meal              Build, export, and log a meal plan
  custom            Manage your custom exercises (add, list, rm)
  admin             Admin dashboard (summary, logs, reset)
`

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usageText)
		os.Exit(2)
	}

	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("FATAL: Could not load config: %v", err)
	}

	app, err := newApp(cfg)
	if err != nil {
		log.Fatalf("FATAL: Could not open local state: %v", err)
	}
	defer app.db.Close()

	ctx := context.Background()
	cmd, args := os.Args[1], os.Args[2:]

	switch cmd {
	case "login":
		err = app.login(ctx, args)
	case "logout":
		err = app.logout(ctx)
	case "whoami":
		err = app.whoami(ctx)
	case "ping":
		err = app.ping(ctx)
	case "exercises":
		err = app.exercises(ctx, args)
	case "calories":
		err = app.calories(args)
	case "build":
		err = app.build(ctx, args)
	case "meal":
		err = app.meal(ctx, args)
	case "custom":
		err = app.custom(ctx, args)
	case "admin":
		err = app.admin(ctx, args)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command %q\n\n%s", cmd, usageText)
		os.Exit(2)
	}

	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

type app struct {
	cfg      config.Config
	api      *client.Client
	db       *sql.DB
	sessions *local.SessionStore
	customs  *local.CustomExerciseStore
}

func newApp(cfg config.Config) (*app, error) {
	db, err := local.Open(cfg.Client.StatePath)
	if err != nil {
		return nil, err
	}
	return &app{
		cfg:      cfg,
		api:      client.New(cfg.Client.BaseURL),
		db:       db,
		sessions: local.NewSessionStore(db),
		customs:  local.NewCustomExerciseStore(db),
	}, nil
}

// session loads the stored session or fails with a login hint.
func (a *app) session(ctx context.Context) (*domain.Session, error) {
	sess, err := a.sessions.Get(ctx)
	if err != nil {
		return nil, err
	}
	if sess == nil {
		return nil, errors.New("not logged in; run 'coach login <code>' first")
	}
	return sess, nil
}

func (a *app) login(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("login", flag.ExitOnError)
	fs.Parse(args)

	code := strings.TrimSpace(fs.Arg(0))
	if code == "" {
		return errors.New("usage: coach login <code>")
	}

	sess, err := a.api.Login(ctx, code)
	if err != nil {
		return err
	}
	if err := a.sessions.Set(ctx, *sess); err != nil {
		return err
	}

	if sess.IsAdmin() {
		fmt.Println("Logged in as admin")
		return nil
	}
	name := sess.CoachName
	if name == "" {
		name = sess.Code
	}
	fmt.Printf("Logged in as %s (%s)\n", name, sess.Code)
	return nil
}

func (a *app) logout(ctx context.Context) error {
	if err := a.sessions.Clear(ctx); err != nil {
		return err
	}
	fmt.Println("Logged out")
	return nil
}

func (a *app) whoami(ctx context.Context) error {
	sess, err := a.sessions.Get(ctx)
	if err != nil {
		return err
	}
	if sess == nil {
		fmt.Println("Not logged in")
		return nil
	}
	fmt.Printf("Role:  %s\nCode:  %s\n", sess.Role, sess.Code)
	if sess.CoachName != "" {
		fmt.Printf("Name:  %s\n", sess.CoachName)
	}
	return nil
}

func (a *app) ping(ctx context.Context) error {
	if err := a.api.Health(ctx); err != nil {
		return err
	}
	fmt.Println("Server is up at", a.cfg.Client.BaseURL)
	return nil
}

// library returns the built-in catalog merged with the coach's custom
// entries when a coach session exists.
func (a *app) library(ctx context.Context) ([]domain.ExerciseDetail, error) {
	base := catalog.All()

	sess, err := a.sessions.Get(ctx)
	if err != nil {
		return nil, err
	}
	if !sess.IsCoach() {
		return base, nil
	}

	custom, err := a.customs.List(ctx, sess.Code)
	if err != nil {
		return nil, err
	}
	return catalog.Merge(base, custom), nil
}

func (a *app) exercises(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("exercises", flag.ExitOnError)
	group := fs.String("group", catalog.AllGroupsTab, "muscle group filter ("+strings.Join(catalog.MuscleGroups, ", ")+")")
	fs.Parse(args)

	library, err := a.library(ctx)
	if err != nil {
		return err
	}

	for _, ex := range catalog.Filter(library, *group) {
		marker := ""
		if ex.IsCustom {
			marker = " (custom)"
		} else if ex.IsSupplemental {
			marker = " (supplemental)"
		}
		fmt.Printf("%-40s %-12s %s%s\n", ex.ID, ex.MuscleGroup, ex.Name, marker)
	}
	return nil
}

func (a *app) calories(args []string) error {
	fs := flag.NewFlagSet("calories", flag.ExitOnError)
	age := fs.Int("age", 0, "client age in years")
	gender := fs.String("gender", "", "Male, Female, or Other")
	height := fs.Float64("height", 0, "height in cm")
	weight := fs.Float64("weight", 0, "weight in kg")
	activity := fs.String("activity", string(nutrition.ActivitySedentary), "sedentary, light, moderate, active, veryActive")
	goal := fs.String("goal", string(nutrition.GoalMaintain), "lose, maintain, gain")
	fs.Parse(args)

	res, err := nutrition.Calculate(nutrition.Input{
		Age:      *age,
		Gender:   *gender,
		HeightCm: *height,
		WeightKg: *weight,
		Activity: nutrition.ActivityLevel(*activity),
		Goal:     nutrition.Goal(*goal),
	})
	if err != nil {
		return err
	}

	fmt.Printf("BMR:    %.0f kcal\n", res.BMR)
	fmt.Printf("TDEE:   %.0f kcal\n", res.TDEE)
	fmt.Printf("Target: %s\n", res.Label())
	return nil
}

// stringList collects a repeatable flag value.
type stringList []string

func (l *stringList) String() string { return strings.Join(*l, ",") }

func (l *stringList) Set(v string) error {
	*l = append(*l, v)
	return nil
}

// parseSelection reads one -ex value: an exercise id, optionally followed by
// "=SETSxREPS" (for example "benchpress=4x8").
func parseSelection(raw string) (id string, sets, reps int, err error) {
	id = raw
	if i := strings.Index(raw, "="); i >= 0 {
		id = raw[:i]
		counts := strings.SplitN(raw[i+1:], "x", 2)
		if len(counts) != 2 {
			return "", 0, 0, fmt.Errorf("bad selection %q: expected id=SETSxREPS", raw)
		}
		sets, err = strconv.Atoi(counts[0])
		if err == nil {
			reps, err = strconv.Atoi(counts[1])
		}
		if err != nil || sets < 1 || reps < 1 {
			return "", 0, 0, fmt.Errorf("bad selection %q: expected id=SETSxREPS", raw)
		}
	}
	return id, sets, reps, nil
}

// submitDeps wires a builder submission: the API client, the output
// directory, and the optional archive bucket.
func (a *app) submitDeps(sess *domain.Session, outDir string) builder.SubmitDeps {
	deps := builder.SubmitDeps{
		Session: sess,
		API:     a.api,
		WriteFile: func(filename string, data []byte) error {
			return os.WriteFile(filepath.Join(outDir, filename), data, 0o644)
		},
	}
	if a.cfg.Archive.Enabled {
		archive, err := storage.NewS3Storage(a.cfg.Archive)
		if err == nil {
			deps.Archive = archive
		}
		// A broken archive config degrades to local-only export.
	}
	return deps
}

func printResult(res *builder.Result, outDir string) {
	fmt.Println("Exported", filepath.Join(outDir, res.Filename))
	if res.ShareURL != "" {
		fmt.Println("Share link:", res.ShareURL)
	}
	if res.Row != nil {
		fmt.Printf("Logged %s (commission %.2f)\n", res.Row.CourseName, res.Row.CommissionAmount)
	}
}

func (a *app) build(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("build", flag.ExitOnError)
	name := fs.String("client", "", "client name")
	gender := fs.String("gender", "", "client gender")
	age := fs.Float64("age", 0, "client age in years")
	height := fs.Float64("height", 0, "client height in cm")
	weight := fs.Float64("weight", 0, "client weight in kg")
	course := fs.String("course", "", "course name")
	all := fs.Bool("all", false, "select the whole library")
	group := fs.String("group", catalog.AllGroupsTab, "muscle group to pair with -all")
	outDir := fs.String("out", ".", "directory for the exported PDF")
	var selections stringList
	fs.Var(&selections, "ex", "exercise id, optionally id=SETSxREPS (repeatable)")
	fs.Parse(args)

	sess, err := a.session(ctx)
	if err != nil {
		return err
	}

	library, err := a.library(ctx)
	if err != nil {
		return err
	}

	b := builder.NewPlanBuilder()
	b.SetClient(builder.ClientDetails{
		Name:     *name,
		Gender:   *gender,
		Age:      *age,
		HeightCm: *height,
		WeightKg: *weight,
	})
	b.SetCourseName(*course)

	if *all {
		b.SelectAll(catalog.Filter(library, *group))
	}
	for _, raw := range selections {
		id, sets, reps, err := parseSelection(raw)
		if err != nil {
			return err
		}
		ex, ok := catalog.Find(library, id)
		if !ok {
			return fmt.Errorf("unknown exercise id %q", id)
		}
		b.Toggle(ex)
		if sets > 0 {
			b.SetSets(id, sets)
			b.SetReps(id, reps)
		}
	}

	res, err := b.Submit(ctx, a.submitDeps(sess, *outDir))
	if err != nil {
		return err
	}
	printResult(res, *outDir)
	return nil
}

func (a *app) meal(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("meal", flag.ExitOnError)
	name := fs.String("client", "", "client name")
	gender := fs.String("gender", "", "client gender")
	age := fs.Float64("age", 0, "client age in years")
	height := fs.Float64("height", 0, "client height in cm")
	weight := fs.Float64("weight", 0, "client weight in kg")
	course := fs.String("course", "", "plan name (stored with the meal plan prefix)")
	breakfast := fs.String("breakfast", "", "breakfast text")
	lunch := fs.String("lunch", "", "lunch text")
	dinner := fs.String("dinner", "", "dinner text")
	snacks := fs.String("snacks", "", "snacks text")
	notes := fs.String("notes", "", "free-form notes")
	activity := fs.String("activity", "", "activity level to compute a calorie target (optional)")
	goal := fs.String("goal", "", "goal to compute a calorie target (optional)")
	outDir := fs.String("out", ".", "directory for the exported PDF")
	fs.Parse(args)

	sess, err := a.session(ctx)
	if err != nil {
		return err
	}

	b := builder.NewMealPlanBuilder()
	b.SetClient(builder.ClientDetails{
		Name:     *name,
		Gender:   *gender,
		Age:      *age,
		HeightCm: *height,
		WeightKg: *weight,
	})
	b.SetCourseName(*course)
	b.SetMeal(builder.MealBreakfast, *breakfast)
	b.SetMeal(builder.MealLunch, *lunch)
	b.SetMeal(builder.MealDinner, *dinner)
	b.SetMeal(builder.MealSnacks, *snacks)
	b.SetNotes(*notes)

	if *activity != "" && *goal != "" {
		res, err := b.CalculateTarget(nutrition.ActivityLevel(*activity), nutrition.Goal(*goal))
		if err != nil {
			return err
		}
		fmt.Println("Daily target:", res.Label())
	}

	res, err := b.Submit(ctx, a.submitDeps(sess, *outDir))
	if err != nil {
		return err
	}
	printResult(res, *outDir)
	return nil
}

func (a *app) custom(ctx context.Context, args []string) error {
	if len(args) < 1 {
		return errors.New("usage: coach custom <add|list|rm> [flags]")
	}

	sess, err := a.session(ctx)
	if err != nil {
		return err
	}
	if !sess.IsCoach() {
		return errors.New("custom exercises belong to coach sessions")
	}

	switch args[0] {
	case "add":
		fs := flag.NewFlagSet("custom add", flag.ExitOnError)
		name := fs.String("name", "", "exercise name")
		group := fs.String("group", "", "muscle group")
		fs.Parse(args[1:])

		ex, err := a.customs.Add(ctx, sess.Code, *name, *group)
		if err != nil {
			return err
		}
		fmt.Printf("Added %s (%s)\n", ex.Name, ex.ID)
		return nil

	case "list":
		list, err := a.customs.List(ctx, sess.Code)
		if err != nil {
			return err
		}
		if len(list) == 0 {
			fmt.Println("No custom exercises")
			return nil
		}
		for _, ex := range list {
			fmt.Printf("%-40s %-12s %s\n", ex.ID, ex.MuscleGroup, ex.Name)
		}
		return nil

	case "rm":
		fs := flag.NewFlagSet("custom rm", flag.ExitOnError)
		fs.Parse(args[1:])
		id := fs.Arg(0)
		if id == "" {
			return errors.New("usage: coach custom rm <id>")
		}
		if err := a.customs.Delete(ctx, sess.Code, id); err != nil {
			return err
		}
		fmt.Println("Removed", id)
		return nil

	default:
		return fmt.Errorf("unknown custom subcommand %q", args[0])
	}
}

func (a *app) admin(ctx context.Context, args []string) error {
	if len(args) < 1 {
		return errors.New("usage: coach admin <summary|logs|reset> [flags]")
	}

	sess, err := a.session(ctx)
	if err != nil {
		return err
	}

	switch args[0] {
	case "summary":
		rows, err := a.api.ListWorkoutLogs(ctx, sess.Code)
		if err != nil {
			return err
		}
		summary := report.Aggregate(rows)

		fmt.Printf("%-14s %9s %11s %11s\n", "COACH", "WORKOUTS", "MEAL PLANS", "COMMISSION")
		for _, coach := range summary.Coaches {
			fmt.Printf("%-14s %9d %11d %11.2f\n",
				coach.CoachCode, coach.Workouts, coach.MealPlans, coach.Commission)
		}
		fmt.Printf("\n%d rows, total commission %.2f\n", summary.TotalRows, summary.TotalCommission)
		return nil

	case "logs":
		rows, err := a.api.ListWorkoutLogs(ctx, sess.Code)
		if err != nil {
			return err
		}
		for _, row := range rows {
			kind := "workout"
			if row.IsMealPlan() {
				kind = "meal plan"
			}
			fmt.Printf("%s  %-10s %-14s %-20s %-9s %.2f\n",
				row.CreatedAt.Format("2006-01-02 15:04"),
				row.ID.Hex()[:10], row.CoachCode, row.ClientName, kind, row.CommissionAmount)
		}
		return nil

	case "reset":
		fs := flag.NewFlagSet("admin reset", flag.ExitOnError)
		yes := fs.Bool("yes", false, "confirm deleting every workout log")
		fs.Parse(args[1:])

		if !*yes {
			return errors.New("this deletes every workout log; rerun with -yes to confirm")
		}
		count, err := a.api.DeleteAllWorkoutLogs(ctx, sess.Code)
		if err != nil {
			return err
		}
		fmt.Printf("Deleted %d rows\n", count)
		return nil

	default:
		return fmt.Errorf("unknown admin subcommand %q", args[0])
	}
}
