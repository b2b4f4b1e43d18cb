// Package clockwindow memutuskan apakah clock-in / clock-out boleh dilakukan
// pada menit tertentu, berdasarkan konfigurasi jam aktif.
//
// Semua fungsi di sini murni: "now" selalu diberikan pemanggil dalam menit
// sejak tengah malam (0..1439).
package clockwindow

import (
	"fmt"

	"officer_duty_backend/internals/helpers/dbtime"
)

const minutesPerDay = 24 * 60

type State string

const (
	StateNotConfigured State = "not_configured"
	StateDisabled      State = "disabled"
	StateActive        State = "active"
)

const (
	MsgCanClockIn    = "You can clock in now"
	MsgCanClockOut   = "You can clock out now"
	MsgNotConfigured = "Clock settings not configured"
	MsgDisabled      = "Clock settings are currently disabled"
)

// Window adalah potongan konfigurasi yang dibutuhkan evaluator.
type Window struct {
	ClockInStart  dbtime.Tod
	ClockOutStart dbtime.Tod
	IsActive      bool
}

// SpansMidnight: shift dibuka sebelum tengah malam dan ditutup esok harinya.
func (w *Window) SpansMidnight() bool {
	return w != nil && w.ClockInStart.Minutes() > w.ClockOutStart.Minutes()
}

type Decision struct {
	State       State  `json:"state"`
	CanClockIn  bool   `json:"canClockIn"`
	CanClockOut bool   `json:"canClockOut"`
	Message     string `json:"message"`
}

// CanClockIn: start <= now < end; start > end berarti jendela melewati tengah malam.
func CanClockIn(now, start, end int) bool {
	now = normalize(now)
	if start > end {
		return now >= start || now < end
	}
	return start <= now && now < end
}

// CanClockOut tidak punya batas atas: sekali dibuka tetap terbuka sampai hari berganti.
func CanClockOut(now, clockOutStart int) bool {
	return normalize(now) >= clockOutStart
}

// Evaluate: w == nil berarti belum ada konfigurasi.
func Evaluate(w *Window, now int) Decision {
	if w == nil {
		return Decision{State: StateNotConfigured, Message: MsgNotConfigured}
	}
	if !w.IsActive {
		return Decision{State: StateDisabled, Message: MsgDisabled}
	}

	now = normalize(now)
	start := w.ClockInStart.Minutes()
	end := w.ClockOutStart.Minutes()

	d := Decision{
		State:       StateActive,
		CanClockIn:  CanClockIn(now, start, end),
		CanClockOut: CanClockOut(now, end),
	}
	switch {
	case d.CanClockIn:
		d.Message = MsgCanClockIn
	case d.CanClockOut:
		d.Message = MsgCanClockOut
	case now < start:
		d.Message = fmt.Sprintf("Clock-in starts at %s, clock-out starts at %s", w.ClockInStart, w.ClockOutStart)
	default:
		d.Message = fmt.Sprintf("Clock-out started at %s", w.ClockOutStart)
	}
	return d
}

// ClockInDenied / ClockOutDenied: pesan penolakan untuk aksi attendance.
func ClockInDenied(w *Window, d Decision) string {
	if d.State != StateActive {
		return d.Message
	}
	return fmt.Sprintf("Clock-in is only allowed from %s until before %s", w.ClockInStart, w.ClockOutStart)
}

func ClockOutDenied(w *Window, d Decision) string {
	if d.State != StateActive {
		return d.Message
	}
	return fmt.Sprintf("Clock-out is only allowed from %s onwards", w.ClockOutStart)
}

func normalize(m int) int {
	m %= minutesPerDay
	if m < 0 {
		m += minutesPerDay
	}
	return m
}
