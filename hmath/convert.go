package hmath

import (
	"errors"
	"math"
)

// Sentinel errors for the disk ⇄ half-plane conversion.
var (
	// ErrNoPairing indicates that no sanctioned input pairing is satisfied.
	ErrNoPairing = errors.New("hmath: no convertible input pairing is set")
	// ErrConvertDomain indicates an input outside its formula's domain.
	ErrConvertDomain = errors.New("hmath: conversion input outside its domain")
)

// CircleModel carries the eight descriptive slots of one hyperbolic
// circle whose center lies on the main axis: four in the Poincaré disk
// model and four in the half-plane model. Zero means "unknown".
//
// Slot meanings (d = hyperbolic distance of the center from the
// reference point, ρ = hyperbolic radius):
//
//	Y  = tanh(d/2)        disk offset of the center
//	R  = tanh(ρ/2)        Poincaré radius
//	C  = 2π·tanh(ρ/2)     Euclidean circumference of the disk image
//	YG = e^d·cosh(ρ)      Euclidean center height in the half-plane
//	RG = e^d·sinh(ρ)      Euclidean radius in the half-plane
//	CG = 2π·RG            Euclidean circumference of the half-plane image
//
// X and XG are carried through untouched (the circle sits on the axis).
type CircleModel struct {
	X, Y, R, C     float64 // Poincaré disk slots
	XG, YG, RG, CG float64 // half-plane slots
}

// DiskHalfPlane fills every derivable slot of m from exactly one of the
// seven sanctioned input pairings, checked in this priority order:
//
//	(Y, R), (Y, C), (YG, RG), (YG, CG), (Y, YG), (C, CG), (RG, R)
//
// The first pairing whose both members are nonzero wins; later pairings
// are ignored even if also satisfied (the order-sensitive policy of the
// original conditional chain). Each pairing determines the pair (d, ρ)
// and therefore the whole model.
//
// Returns ErrNoPairing when no pairing is satisfied and ErrConvertDomain
// when a satisfied pairing carries a value outside its formula's domain
// (an atanh argument not inside (0,1), an acosh argument below 1, or a
// logarithm argument that is not positive).
func DiskHalfPlane(m CircleModel) (CircleModel, error) {
	var d, rho float64
	var err error

	switch {
	case m.Y != 0 && m.R != 0:
		if d, err = axisDistance(m.Y); err != nil {
			return m, err
		}
		rho, err = diskRadius(m.R)
	case m.Y != 0 && m.C != 0:
		if d, err = axisDistance(m.Y); err != nil {
			return m, err
		}
		rho, err = diskRadius(m.C / (2 * math.Pi))
	case m.YG != 0 && m.RG != 0:
		rho, d, err = halfPlaneCircle(m.YG, m.RG)
	case m.YG != 0 && m.CG != 0:
		rho, d, err = halfPlaneCircle(m.YG, m.CG/(2*math.Pi))
	case m.Y != 0 && m.YG != 0:
		if d, err = axisDistance(m.Y); err != nil {
			return m, err
		}
		// yg = e^d·cosh ρ, so cosh ρ = yg·e^(−d).
		if q := m.YG * math.Exp(-d); q >= 1 {
			rho = Acosh(q)
		} else {
			err = ErrConvertDomain
		}
	case m.C != 0 && m.CG != 0:
		if rho, err = diskRadius(m.C / (2 * math.Pi)); err != nil {
			return m, err
		}
		d, err = positiveLog(m.CG / (2 * math.Pi * math.Sinh(rho)))
	case m.RG != 0 && m.R != 0:
		if rho, err = diskRadius(m.R); err != nil {
			return m, err
		}
		d, err = positiveLog(m.RG / math.Sinh(rho))
	default:
		return m, ErrNoPairing
	}
	if err != nil {
		return m, err
	}

	m.Y = math.Tanh(d / 2)
	m.R = math.Tanh(rho / 2)
	m.C = 2 * math.Pi * m.R
	m.YG = math.Exp(d) * math.Cosh(rho)
	m.RG = math.Exp(d) * math.Sinh(rho)
	m.CG = 2 * math.Pi * m.RG
	return m, nil
}

// axisDistance inverts y = tanh(d/2) for y strictly inside (0,1).
func axisDistance(y float64) (float64, error) {
	if y <= 0 || y >= 1 {
		return 0, ErrConvertDomain
	}
	return 2 * math.Atanh(y), nil
}

// diskRadius inverts r = tanh(ρ/2) for r strictly inside (0,1).
func diskRadius(r float64) (float64, error) {
	if r <= 0 || r >= 1 {
		return 0, ErrConvertDomain
	}
	return 2 * math.Atanh(r), nil
}

// halfPlaneCircle recovers (ρ, d) from the half-plane Euclidean center
// height yg = e^d·cosh ρ and radius rg = e^d·sinh ρ: their ratio gives
// tanh ρ and the height then isolates e^d.
func halfPlaneCircle(yg, rg float64) (rho, d float64, err error) {
	if yg <= 0 || rg <= 0 || rg >= yg {
		return 0, 0, ErrConvertDomain
	}
	rho = math.Atanh(rg / yg)
	d, err = positiveLog(yg / math.Cosh(rho))
	return rho, d, err
}

// positiveLog returns ln(x) for x > 0 and ErrConvertDomain otherwise.
func positiveLog(x float64) (float64, error) {
	if x <= 0 {
		return 0, ErrConvertDomain
	}
	return math.Log(x), nil
}
