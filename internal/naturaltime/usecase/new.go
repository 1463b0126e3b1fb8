package usecase

import (
	"github.com/Visma-Notification-Center/Visma-NaturalTimeParser/internal/naturaltime"
	pkgLog "github.com/Visma-Notification-Center/Visma-NaturalTimeParser/pkg/log"
)

type implUseCase struct {
	l       pkgLog.Logger
	plugins []naturaltime.TokenPlugin
}

// New creates a new naturaltime UseCase instance. Plugins are tried in the
// given order; the first one whose Tokenize recognizes the input wins.
func New(l pkgLog.Logger, plugins ...naturaltime.TokenPlugin) *implUseCase {
	return &implUseCase{
		l:       l,
		plugins: plugins,
	}
}
