package service

import "errors"

var (
	ErrStageNotFound     = errors.New("stage not found")
	ErrEncounterNotFound = errors.New("encounter not found")
	ErrEncounterFinished = errors.New("encounter is already finished")
	ErrNoCardsSelected   = errors.New("no cards selected")
	ErrInvalidSelection  = errors.New("invalid card selection")
	ErrTooManyCards      = errors.New("too many cards selected")
)
