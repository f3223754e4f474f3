package session

import "github.com/renato0307/pitmaster/internal/domain"

// Reduce folds ev into prev and returns the next state. It never fails and
// never mutates prev: pointers are replaced, and history slices are
// reallocated on append so earlier states keep their own backing arrays.
func Reduce(prev State, ev Event) State {
	next := prev

	switch e := ev.(type) {
	case SetupSucceeded:
		next.SessionID = e.SessionID
		next.Prediction = ptr(e.Prediction)
		next.BackwardPlan = e.BackwardPlan
		next.Loading = false
		next.Error = ""

	case ReadingSucceeded:
		next.Prediction = ptr(e.Prediction)
		next.Status = ptr(e.Status)
		next.TempHistory = appendCopy(prev.TempHistory, domain.HistoryPoint{
			ElapsedMinutes: e.ElapsedMinutes,
			TempF:          e.LoggedTempF,
		})
		next.PredictionHistory = appendCopy(prev.PredictionHistory, domain.PredictionHistoryPoint{
			ElapsedMinutes: e.ElapsedMinutes,
			P10:            e.Prediction.P10Minutes,
			P50:            e.Prediction.P50Minutes,
			P90:            e.Prediction.P90Minutes,
		})
		next.Loading = false

	case WrapSucceeded:
		// Status.WrapType is left alone until the next status-bearing response
		next.Prediction = ptr(e.Prediction)
		next.Loading = false

	case FinishSucceeded:
		next.Report = ptr(e.Report)
		next.Loading = false

	case PredictionUpdated:
		next.Prediction = ptr(e.Prediction)

	case StateUpdated:
		next.Status = ptr(e.Status)

	case ModeToggled:
		next.DetailedMode = !prev.DetailedMode

	case LoadingSet:
		next.Loading = e.Loading

	case ErrorSet:
		next.Error = e.Message
		next.Loading = false

	case Reset:
		return InitialState()
	}

	return next
}

// Replay folds events in order starting from the initial state
func Replay(events []Event) State {
	s := InitialState()
	for _, ev := range events {
		s = Reduce(s, ev)
	}
	return s
}

func ptr[T any](v T) *T {
	return &v
}

func appendCopy[T any](s []T, v T) []T {
	out := make([]T, len(s), len(s)+1)
	copy(out, s)
	return append(out, v)
}
