// Package clock отдаёт текущее время в опорном часовом поясе.
// Все подписочные расчёты ведутся в нём; в другие зоны время
// конвертируется только при выводе.
package clock

import "time"

const referenceZone = "Europe/Moscow"

type Clock interface {
	Now() time.Time
}

type zoneClock struct {
	loc *time.Location
}

func New() (Clock, error) {
	loc, err := time.LoadLocation(referenceZone)
	if err != nil {
		return nil, err
	}
	return &zoneClock{loc: loc}, nil
}

func (c *zoneClock) Now() time.Time {
	return time.Now().In(c.loc)
}

// FakeClock — фиксированное время для тестов.
type FakeClock struct {
	Current time.Time
}

func (f *FakeClock) Now() time.Time {
	return f.Current
}
