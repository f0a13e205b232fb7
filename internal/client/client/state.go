package client

// State is a step of a single call through the pipeline:
//
//	Idle -> Dispatched -> Succeeded | BusinessError | Failed | AuthFailed
//	AuthFailed -> Refreshing -> Retried -> Dispatched | GaveUp
type State int

const (
	StateIdle State = iota
	StateDispatched
	StateSucceeded
	StateBusinessError
	StateFailed
	StateAuthFailed
	StateRefreshing
	StateRetried
	StateGaveUp
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateDispatched:
		return "dispatched"
	case StateSucceeded:
		return "succeeded"
	case StateBusinessError:
		return "business_error"
	case StateFailed:
		return "failed"
	case StateAuthFailed:
		return "auth_failed"
	case StateRefreshing:
		return "refreshing"
	case StateRetried:
		return "retried"
	case StateGaveUp:
		return "gave_up"
	default:
		return "unknown"
	}
}
