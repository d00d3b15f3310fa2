package offense

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Type tags the kind of regulatory offense.
type Type string

const (
	TypeParkingViolation Type = "parking_violation"
	TypeNoiseDisturbance Type = "noise_disturbance"
	TypeWasteDisposal    Type = "waste_disposal"
	TypeBuildingCode     Type = "building_code"
	TypeBusinessPermit   Type = "business_permit"
	TypeEnvironmental    Type = "environmental"
	TypeFoodSafety       Type = "food_safety"
	TypePublicSafety     Type = "public_safety"
)

// TypeInfo describes one catalog entry: a human-readable description and
// the base fine before any repeat-offense penalty.
type TypeInfo struct {
	Description string
	BaseFine    decimal.Decimal
}

// catalog is the static offense-type table. It is read-only at runtime;
// fine amounts are configured here and nowhere else.
var catalog = map[Type]TypeInfo{
	TypeParkingViolation: {Description: "Illegal parking in restricted areas", BaseFine: decimal.NewFromInt(75)},
	TypeNoiseDisturbance: {Description: "Exceeding permitted noise levels", BaseFine: decimal.NewFromInt(150)},
	TypeWasteDisposal:    {Description: "Improper waste disposal", BaseFine: decimal.NewFromInt(250)},
	TypeBuildingCode:     {Description: "Violation of building regulations", BaseFine: decimal.NewFromInt(500)},
	TypeBusinessPermit:   {Description: "Operating without proper business permits", BaseFine: decimal.NewFromInt(750)},
	TypeEnvironmental:    {Description: "Environmental protection violations", BaseFine: decimal.NewFromInt(1000)},
	TypeFoodSafety:       {Description: "Food safety and hygiene violations", BaseFine: decimal.NewFromInt(800)},
	TypePublicSafety:     {Description: "Endangering public safety", BaseFine: decimal.NewFromInt(600)},
}

// Types lists every catalog entry in a stable order, for menus and reports.
func Types() []Type {
	return []Type{
		TypeParkingViolation,
		TypeNoiseDisturbance,
		TypeWasteDisposal,
		TypeBuildingCode,
		TypeBusinessPermit,
		TypeEnvironmental,
		TypeFoodSafety,
		TypePublicSafety,
	}
}

// Lookup returns the catalog entry for a type.
func Lookup(t Type) (TypeInfo, bool) {
	info, ok := catalog[t]
	return info, ok
}

func (t Type) IsValid() bool {
	_, ok := catalog[t]
	return ok
}

func (t Type) String() string { return string(t) }

// Offender is a real-world person who committed one or more offenses.
// Created once and never deleted; CaseIDs grows as cases are opened.
type Offender struct {
	ID          uuid.UUID
	FullName    string
	Address     string
	DateOfBirth time.Time

	// CaseIDs back-references the offender's cases in creation order.
	// The registry appends here exactly once per case, after the case
	// is fully constructed.
	CaseIDs []uuid.UUID
}

// Offense is a single offense incident. Immutable after creation except
// for the evidence note.
type Offense struct {
	ID           uuid.UUID
	OffenderID   uuid.UUID
	Location     string
	Date         time.Time
	Type         Type
	EvidenceNote string
}

// WithinStatuteOfLimitations reports whether the offense can still be
// acted upon: the date plus the limitation window is after today.
func (o *Offense) WithinStatuteOfLimitations(today time.Time, limitMonths int) bool {
	return o.Date.AddDate(0, limitMonths, 0).After(today)
}
