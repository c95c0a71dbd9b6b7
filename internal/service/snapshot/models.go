package snapshot

import (
	"time"

	"github.com/brambleappmatus/biztree-sub002/internal/domain"
)

// RangeFunc вычисляет интервал запроса в часовом поясе бизнеса
// (часовой пояс известен только после загрузки бизнеса)
type RangeFunc func(loc *time.Location) domain.Interval

// Options дополнительные параметры загрузки
type Options struct {
	// SkipExternal не обращаться к внешнему календарю
	SkipExternal bool
}
