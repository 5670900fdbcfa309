package catalog

import "nakram/coach-builder/internal/domain"

const imageBase = "https://raw.githubusercontent.com/yuhonas/free-exercise-db/main/exercises/"

// builtin is the core library shown on every coach's builder.
var builtin = []domain.ExerciseDetail{
	// Chest
	{ID: "benchpress", Name: "Barbell Bench Press", MuscleGroup: "Chest", ImageURL: imageBase + "Barbell_Bench_Press/images/0.jpg"},
	{ID: "inclinedbpress", Name: "Incline Dumbbell Press", MuscleGroup: "Chest", ImageURL: imageBase + "Incline_Dumbbell_Press/images/0.jpg"},
	{ID: "chestfly", Name: "Dumbbell Fly", MuscleGroup: "Chest", ImageURL: imageBase + "Dumbbell_Flyes/images/0.jpg"},
	{ID: "pushup", Name: "Push-Up", MuscleGroup: "Chest", ImageURL: imageBase + "Pushups/images/0.jpg"},
	{ID: "cablecrossover", Name: "Cable Crossover", MuscleGroup: "Chest", ImageURL: imageBase + "Cable_Crossover/images/0.jpg"},

	// Back
	{ID: "deadlift", Name: "Barbell Deadlift", MuscleGroup: "Back", ImageURL: imageBase + "Barbell_Deadlift/images/0.jpg"},
	{ID: "pullup", Name: "Pull-Up", MuscleGroup: "Back", ImageURL: imageBase + "Pullups/images/0.jpg"},
	{ID: "bentoverrow", Name: "Bent-Over Barbell Row", MuscleGroup: "Back", ImageURL: imageBase + "Bent_Over_Barbell_Row/images/0.jpg"},
	{ID: "latpulldown", Name: "Lat Pulldown", MuscleGroup: "Back", ImageURL: imageBase + "Wide-Grip_Lat_Pulldown/images/0.jpg"},
	{ID: "seatedcablerow", Name: "Seated Cable Row", MuscleGroup: "Back", ImageURL: imageBase + "Seated_Cable_Rows/images/0.jpg"},

	// Legs
	{ID: "squat", Name: "Barbell Squat", MuscleGroup: "Legs", ImageURL: imageBase + "Barbell_Squat/images/0.jpg"},
	{ID: "legpress", Name: "Leg Press", MuscleGroup: "Legs", ImageURL: imageBase + "Leg_Press/images/0.jpg"},
	{ID: "lunge", Name: "Dumbbell Lunge", MuscleGroup: "Legs", ImageURL: imageBase + "Dumbbell_Lunges/images/0.jpg"},
	{ID: "legcurl", Name: "Lying Leg Curl", MuscleGroup: "Legs", ImageURL: imageBase + "Lying_Leg_Curls/images/0.jpg"},
	{ID: "calfraise", Name: "Standing Calf Raise", MuscleGroup: "Legs", ImageURL: imageBase + "Standing_Calf_Raises/images/0.jpg"},

	// Shoulders
	{ID: "overheadpress", Name: "Overhead Barbell Press", MuscleGroup: "Shoulders", ImageURL: imageBase + "Standing_Military_Press/images/0.jpg"},
	{ID: "lateralraise", Name: "Dumbbell Lateral Raise", MuscleGroup: "Shoulders", ImageURL: imageBase + "Side_Lateral_Raise/images/0.jpg"},
	{ID: "frontraise", Name: "Dumbbell Front Raise", MuscleGroup: "Shoulders", ImageURL: imageBase + "Front_Dumbbell_Raise/images/0.jpg"},
	{ID: "facepull", Name: "Face Pull", MuscleGroup: "Shoulders", ImageURL: imageBase + "Face_Pull/images/0.jpg"},

	// Arms
	{ID: "bicepcurl", Name: "Barbell Bicep Curl", MuscleGroup: "Arms", ImageURL: imageBase + "Barbell_Curl/images/0.jpg"},
	{ID: "hammercurl", Name: "Hammer Curl", MuscleGroup: "Arms", ImageURL: imageBase + "Hammer_Curls/images/0.jpg"},
	{ID: "tricepdip", Name: "Tricep Dip", MuscleGroup: "Arms", ImageURL: imageBase + "Dips_-_Triceps_Version/images/0.jpg"},
	{ID: "triceppushdown", Name: "Tricep Pushdown", MuscleGroup: "Arms", ImageURL: imageBase + "Triceps_Pushdown/images/0.jpg"},

	// Core
	{ID: "plank", Name: "Plank", MuscleGroup: "Core", ImageURL: imageBase + "Plank/images/0.jpg"},
	{ID: "crunch", Name: "Crunch", MuscleGroup: "Core", ImageURL: imageBase + "Crunches/images/0.jpg"},
	{ID: "legraise", Name: "Hanging Leg Raise", MuscleGroup: "Core", ImageURL: imageBase + "Hanging_Leg_Raise/images/0.jpg"},
	{ID: "russiantwist", Name: "Russian Twist", MuscleGroup: "Core", ImageURL: imageBase + "Russian_Twist/images/0.jpg"},

	// Glutes
	{ID: "hipthrust", Name: "Barbell Hip Thrust", MuscleGroup: "Glutes", ImageURL: imageBase + "Barbell_Hip_Thrust/images/0.jpg"},
	{ID: "glutebridge", Name: "Glute Bridge", MuscleGroup: "Glutes", ImageURL: imageBase + "Butt_Lift_Bridge/images/0.jpg"},
	{ID: "kickback", Name: "Glute Kickback", MuscleGroup: "Glutes", ImageURL: imageBase + "Glute_Kickback/images/0.jpg"},

	// Cardio
	{ID: "treadmill", Name: "Treadmill Run", MuscleGroup: "Cardio", ImageURL: imageBase + "Running_Treadmill/images/0.jpg"},
	{ID: "rowingmachine", Name: "Rowing Machine", MuscleGroup: "Cardio", ImageURL: imageBase + "Rowing_Stationary/images/0.jpg"},
	{ID: "jumprope", Name: "Jump Rope", MuscleGroup: "Cardio", ImageURL: imageBase + "Rope_Jumping/images/0.jpg"},
}

// supplemental entries extend the core library; kept separate so the origin
// of each block stays visible.
var supplemental = []domain.ExerciseDetail{
	{ID: "wristcurl", Name: "Dumbbell Wrist Curl", MuscleGroup: "Forearms", ImageURL: imageBase + "Dumbbell_Wrist_Curl/images/0.jpg", IsSupplemental: true},
	{ID: "reversewristcurl", Name: "Reverse Dumbbell Wrist Curl", MuscleGroup: "Forearms", ImageURL: imageBase + "Dumbbell_Reverse_Wrist_Curl/images/0.jpg", IsSupplemental: true},
	{ID: "farmerswalk", Name: "Farmer's Walk", MuscleGroup: "Forearms", ImageURL: imageBase + "Dumbbell_Farmers_Walk/images/0.jpg", IsSupplemental: true},
	{ID: "hammercurl_forearms", Name: "Hammer Curl (Forearms)", MuscleGroup: "Forearms", ImageURL: imageBase + "Hammer_Curls/images/0.jpg", IsSupplemental: true},
	{ID: "platepinch", Name: "Plate Pinch Hold", MuscleGroup: "Forearms", ImageURL: imageBase + "Plate_Pinch/images/0.jpg", IsSupplemental: true},
	{ID: "benchpress_real", Name: "Barbell Bench Press (Photo)", MuscleGroup: "Chest", ImageURL: imageBase + "Barbell_Bench_Press/images/0.jpg", IsSupplemental: true},
	{ID: "squat_real", Name: "Barbell Squat (Photo)", MuscleGroup: "Legs", ImageURL: imageBase + "Barbell_Squat/images/0.jpg", IsSupplemental: true},
	{ID: "deadlift_real", Name: "Barbell Deadlift (Photo)", MuscleGroup: "Legs", ImageURL: imageBase + "Barbell_Deadlift/images/0.jpg", IsSupplemental: true},
}
