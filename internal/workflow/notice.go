package workflow

import "time"

// DefaultNoticeTimeout is how long a notice stays visible.
const DefaultNoticeTimeout = 5 * time.Second

// NoticeLevel tells success and error notices apart.
type NoticeLevel int

const (
	NoticeNone NoticeLevel = iota
	NoticeSuccess
	NoticeError
)

// Notice holds at most one transient message. A new message of either
// level replaces the current one and restarts the timer.
type Notice struct {
	level   NoticeLevel
	text    string
	setAt   time.Time
	timeout time.Duration
	now     func() time.Time
}

// NewNotice creates a notice that expires after timeout. A zero timeout
// uses DefaultNoticeTimeout; a nil clock uses time.Now.
func NewNotice(timeout time.Duration, now func() time.Time) *Notice {
	if timeout <= 0 {
		timeout = DefaultNoticeTimeout
	}
	if now == nil {
		now = time.Now
	}
	return &Notice{timeout: timeout, now: now}
}

func (n *Notice) set(level NoticeLevel, text string) {
	n.level = level
	n.text = text
	n.setAt = n.now()
}

// Success shows a success message.
func (n *Notice) Success(text string) {
	n.set(NoticeSuccess, text)
}

// Error shows an error message.
func (n *Notice) Error(text string) {
	n.set(NoticeError, text)
}

// Fail shows err as an error message.
func (n *Notice) Fail(err error) {
	n.Error(err.Error())
}

// Clear removes the current message.
func (n *Notice) Clear() {
	n.level = NoticeNone
	n.text = ""
	n.setAt = time.Time{}
}

// CheckTimeout clears the message once more than the timeout has elapsed
// since it was set. Called on every tick.
func (n *Notice) CheckTimeout() {
	if n.level == NoticeNone {
		return
	}
	if n.now().Sub(n.setAt) > n.timeout {
		n.Clear()
	}
}

func (n *Notice) Level() NoticeLevel { return n.level }
func (n *Notice) Text() string       { return n.text }
