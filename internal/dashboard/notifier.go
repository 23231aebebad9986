package dashboard

import "github.com/sirupsen/logrus"

// Notifier receives the user-facing outcome of a refresh cycle. The dashboard
// UI surfaces these as toasts; the default implementation logs them.
type Notifier interface {
	Success(msg string)
	Failure(msg string)
}

// LogNotifier writes notifications to the application log.
type LogNotifier struct {
	Log *logrus.Entry
}

func NewLogNotifier(log *logrus.Entry) LogNotifier {
	return LogNotifier{Log: log}
}

func (n LogNotifier) Success(msg string) {
	n.Log.Info(msg)
}

func (n LogNotifier) Failure(msg string) {
	n.Log.Error(msg)
}
