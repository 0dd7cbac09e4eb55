// Package clock abstrae la hora actual para poder fijarla en tests.
package clock

import "time"

// Clock devuelve el instante actual.
type Clock interface {
	Now() time.Time
}

// Real usa el reloj del sistema, en UTC.
type Real struct{}

func (Real) Now() time.Time { return time.Now().UTC() }

// Fixed siempre devuelve el mismo instante.
type Fixed struct {
	At time.Time
}

func (f Fixed) Now() time.Time { return f.At }
