package types

import "errors"

var (
	ErrUnknownView        = errors.New("unknown view path")
	ErrUnknownPaletteMode = errors.New("unknown palette mode, expected 'positional' or 'stable'")
	ErrNoReportStorage    = errors.New("report upload requested but no report storage is configured")
	ErrConflictingModes   = errors.New("--interactive and --serve cannot be used together")
)
