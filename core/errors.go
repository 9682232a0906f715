package core

import "errors"

var (
	// ErrInvalidArgument is returned for an oversampled read of zero samples.
	ErrInvalidArgument = errors.New("adc: invalid argument")

	// ErrHardwareTimeout is returned when a conversion does not complete
	// within Config.SpinLimit polls.
	ErrHardwareTimeout = errors.New("adc: conversion timeout")
)
