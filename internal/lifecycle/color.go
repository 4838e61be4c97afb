package lifecycle

import (
	"strings"

	"github.com/event-registry-api/internal/models"
)

// Color is a UI-facing display color for an event's combined status.
type Color string

const (
	ColorGray     Color = "gray"
	ColorBlue     Color = "blue"
	ColorGreen    Color = "green"
	ColorOrange   Color = "orange"
	ColorDarkGray Color = "dark_gray"
	ColorAmber    Color = "amber"
	ColorRed      Color = "red"
)

// statusPair is a normalized (temporal, administrative) status combination.
type statusPair struct {
	timeStatus  string
	adminStatus string
}

// colorTable holds the exact-pair color rules. Pairs not listed here fall
// through to the tiered fallback in ResolveColor.
var colorTable = map[statusPair]Color{
	{"AGENDADO", "RASCUNHO"}:   ColorGray,
	{"AGENDADO", "PUBLICADO"}:  ColorBlue,
	{"ATIVO", "PUBLICADO"}:     ColorGreen,
	{"ATIVO", "SUSPENSO"}:      ColorOrange,
	{"ENCERRADO", "PUBLICADO"}: ColorDarkGray,
	{"ENCERRADO", "REABERTO"}:  ColorAmber,
	{"ENCERRADO", "CANCELADO"}: ColorRed,
}

// normalize upper-cases and trims a status value. Absent values become the
// empty string, which matches no exact pair and falls through to the
// fallback tiers.
func normalize(status string) string {
	return strings.ToUpper(strings.TrimSpace(status))
}

// ResolveColor maps a (temporal, administrative) status pair to its display
// color. Exact pairs win; otherwise fallback tiers apply in fixed priority:
// cancelled, reopened, suspended, running, then neutral gray.
func ResolveColor(timeStatus, adminStatus string) Color {
	ts := normalize(timeStatus)
	as := normalize(adminStatus)

	if color, ok := colorTable[statusPair{ts, as}]; ok {
		return color
	}

	switch as {
	case string(models.AdminStatusCancelado):
		return ColorRed
	case string(models.AdminStatusReaberto):
		return ColorAmber
	case string(models.AdminStatusSuspenso):
		return ColorOrange
	}

	// EM_ANDAMENTO is a legacy alias for ATIVO still sent by older callers.
	if ts == "EM_ANDAMENTO" || ts == string(models.TimeStatusAtivo) {
		return ColorGreen
	}

	return ColorGray
}

// IsEditable reports whether an event may be edited. Editability depends
// only on the administrative status; event dates never gate editing.
func IsEditable(adminStatus string) bool {
	switch normalize(adminStatus) {
	case string(models.AdminStatusRascunho), string(models.AdminStatusPublicado):
		return true
	}
	return false
}
