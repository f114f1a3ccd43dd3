package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/meltforce/buff/internal/app"
	"github.com/meltforce/buff/internal/engine"
)

// --- Tool definitions ---

var toolLogSet = mcp.NewTool("log_set",
	mcp.WithDescription("Log one set for an exercise against today's session. Reports the set number, whether a new session was opened, and whether the set is a new personal record."),
	mcp.WithString("exercise", mcp.Required(), mcp.Description("Exercise name (e.g. 'Bench Press')")),
	mcp.WithNumber("weight", mcp.Required(), mcp.Description("Weight lifted, in the current display unit")),
	mcp.WithNumber("reps", mcp.Required(), mcp.Description("Repetitions performed")),
	mcp.WithNumber("rpe", mcp.Description("Rating of perceived exertion, 6-10 in half steps. Ignored unless RPE scoring is enabled.")),
)

var toolGetSessions = mcp.NewTool("get_sessions",
	mcp.WithDescription("List workout sessions, most recent day first. Each session groups all sets for one exercise on one calendar day with its best estimated 1RM and total volume."),
	mcp.WithString("exercise", mcp.Description("Filter by exact exercise name")),
)

var toolGetRepRecords = mcp.NewTool("get_rep_records",
	mcp.WithDescription("Per-rep-count records (1-12 reps) for an exercise: the heaviest weight ever lifted at each rep count, with unit and date."),
	mcp.WithString("exercise", mcp.Required(), mcp.Description("Exercise name")),
)

var toolEstimate1RM = mcp.NewTool("estimate_1rm",
	mcp.WithDescription("Estimate the one-rep max for a hypothetical set using the Epley formula."),
	mcp.WithNumber("weight", mcp.Required(), mcp.Description("Weight lifted")),
	mcp.WithNumber("reps", mcp.Required(), mcp.Description("Repetitions performed")),
	mcp.WithNumber("rpe", mcp.Description("Rating of perceived exertion, 6-10. Ignored unless RPE scoring is enabled.")),
)

var toolGetProjections = mcp.NewTool("get_projections",
	mcp.WithDescription("Project the expected max weight at each rep count (1-12) from a one-rep max, using a fixed percentage table."),
	mcp.WithNumber("one_rm", mcp.Required(), mcp.Description("Estimated one-rep max")),
)

var toolGetMilestones = mcp.NewTool("get_milestones",
	mcp.WithDescription("Milestone badge ladder for a marquee exercise (Bench Press, Squat, Deadlift, Overhead Press), evaluated against the all-time best estimated 1RM. Squat and Deadlift rungs are bodyweight multiples."),
	mcp.WithString("exercise", mcp.Required(), mcp.Description("Exercise name")),
)

var toolGetTrend = mcp.NewTool("get_trend",
	mcp.WithDescription("Trend analysis over a series: mean, min, max, standard deviation, least-squares slope per day, and first-to-last delta."),
	mcp.WithString("series", mcp.Description("Series to analyze"), mcp.Enum("exercise", "bodyweight", "bodyfat")),
	mcp.WithString("exercise", mcp.Description("Exercise name, required for the exercise series")),
	mcp.WithString("metric", mcp.Description("Session metric for the exercise series"), mcp.Enum("1rm", "volume")),
)

var toolGetBodyWeight = mcp.NewTool("get_body_weight",
	mcp.WithDescription("Body-weight entries in insertion order."),
)

var toolListExercises = mcp.NewTool("list_exercises",
	mcp.WithDescription("The exercise catalog in insertion order."),
)

// --- Tool handlers ---

func (h *handlers) logSet(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	exercise, err := req.RequireString("exercise")
	if err != nil {
		return mcp.NewToolResultError("exercise parameter is required"), nil
	}
	weight, err := req.RequireFloat("weight")
	if err != nil {
		return mcp.NewToolResultError("weight parameter is required"), nil
	}
	reps, err := req.RequireInt("reps")
	if err != nil {
		return mcp.NewToolResultError("reps parameter is required"), nil
	}

	in := app.SetInput{Exercise: exercise, Weight: weight, Reps: reps}
	if rpe := req.GetFloat("rpe", 0); rpe > 0 {
		in.RPE = &rpe
	}

	res := h.app.SaveSet(in)
	if !res.Saved {
		return mcp.NewToolResultError("nothing saved: weight and reps must be positive"), nil
	}
	return toolJSON(res)
}

func (h *handlers) getSessions(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if exercise := req.GetString("exercise", ""); exercise != "" {
		return toolJSON(h.app.SessionsForExercise(exercise))
	}
	return toolJSON(h.app.Sessions())
}

func (h *handlers) getRepRecords(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	exercise, err := req.RequireString("exercise")
	if err != nil {
		return mcp.NewToolResultError("exercise parameter is required"), nil
	}
	return toolJSON(h.app.RepRecords(exercise))
}

func (h *handlers) estimate1RM(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	weight, err := req.RequireFloat("weight")
	if err != nil {
		return mcp.NewToolResultError("weight parameter is required"), nil
	}
	reps, err := req.RequireInt("reps")
	if err != nil {
		return mcp.NewToolResultError("reps parameter is required"), nil
	}
	var rpe *float64
	if v := req.GetFloat("rpe", 0); v > 0 {
		rpe = &v
	}
	return toolJSON(map[string]float64{"estimated1RM": h.app.Estimate(weight, reps, rpe)})
}

func (h *handlers) getProjections(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	oneRM, err := req.RequireFloat("one_rm")
	if err != nil {
		return mcp.NewToolResultError("one_rm parameter is required"), nil
	}
	return toolJSON(engine.Projections(oneRM))
}

func (h *handlers) getMilestones(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	exercise, err := req.RequireString("exercise")
	if err != nil {
		return mcp.NewToolResultError("exercise parameter is required"), nil
	}
	return toolJSON(h.app.Milestones(exercise))
}

func (h *handlers) getTrend(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var (
		trend *engine.Trend
		err   error
	)
	switch series := req.GetString("series", "exercise"); series {
	case "bodyweight":
		trend, err = h.app.BodyWeightTrend()
	case "bodyfat":
		trend, err = h.app.BodyFatTrend()
	case "exercise":
		exercise := req.GetString("exercise", "")
		if exercise == "" {
			return mcp.NewToolResultError("exercise parameter is required for the exercise series"), nil
		}
		trend, err = h.app.ExerciseTrend(exercise, req.GetString("metric", engine.Metric1RM))
	default:
		return mcp.NewToolResultError("unknown series " + series), nil
	}
	if err != nil {
		return mcp.NewToolResultError("not enough data: " + err.Error()), nil
	}
	return toolJSON(trend)
}

func (h *handlers) getBodyWeight(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return toolJSON(h.app.BodyWeight())
}

func (h *handlers) listExercises(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return toolJSON(h.app.Exercises())
}

func toolJSON(v any) (*mcp.CallToolResult, error) {
	result, err := mcp.NewToolResultJSON(v)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}
