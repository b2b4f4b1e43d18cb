package dbtime

import (
	"time"

	"officer_duty_backend/internals/configs"
)

// Clock bisa di-inject di service supaya test tidak tergantung jam dinding.
type Clock func() time.Time

func SystemClock() time.Time { return time.Now() }

// Local mengonversi waktu ke timezone aplikasi (APP_TIMEZONE).
func Local(t time.Time) time.Time {
	return t.In(configs.Location())
}

// Today: tanggal hari ini menurut timezone aplikasi.
func Today(now time.Time) Date {
	return DateOf(Local(now))
}

// MinuteOfDay: menit sejak tengah malam di timezone aplikasi.
func MinuteOfDay(now time.Time) int {
	l := Local(now)
	return l.Hour()*60 + l.Minute()
}

// AtLocal: jam tertentu pada tanggal lokal `now`, dikembalikan dalam UTC.
func AtLocal(now time.Time, tod Tod) time.Time {
	l := Local(now)
	return time.Date(l.Year(), l.Month(), l.Day(), tod.Hour(), tod.Minute(), tod.Second(), 0, l.Location()).UTC()
}
