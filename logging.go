package lumen

import (
	"log/slog"
	"sync"

	lumenerrors "github.com/lumenjs/lumen/internal/errors"
)

var (
	loggerMu sync.RWMutex
	logger   = slog.Default()
)

// SetLogger installs the *slog.Logger used for contract-violation and
// structural-anomaly diagnostics (spec §7). Defaults to slog.Default().
func SetLogger(l *slog.Logger) {
	loggerMu.Lock()
	defer loggerMu.Unlock()
	if l == nil {
		l = slog.Default()
	}
	logger = l
}

func currentLogger() *slog.Logger {
	loggerMu.RLock()
	defer loggerMu.RUnlock()
	return logger
}

// logContractViolation reports an E1xx-class diagnostic (spec §7:
// "reported via a diagnostic log; recovery not attempted").
func logContractViolation(code, component, detail string) {
	err := lumenerrors.New(code)
	if component != "" {
		err.WithComponent(component)
	}
	currentLogger().Warn(err.Message, "code", err.Code, "category", string(err.Category), "component", component, "detail", detail)
}

// logStructuralAnomaly reports an E2xx-class diagnostic (spec §7:
// "logged and skipped").
func logStructuralAnomaly(code, vnodeType, detail string) {
	err := lumenerrors.New(code).WithVNodeType(vnodeType)
	currentLogger().Warn(err.Message, "code", err.Code, "category", string(err.Category), "vnode_type", vnodeType, "detail", detail)
}
