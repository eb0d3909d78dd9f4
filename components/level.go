package components

// LevelDef is one read-only entry of the level catalog
type LevelDef struct {
	Length           float64
	ChaserSpeedBonus float64
	ObstacleCount    int
	ObstacleSpacing  float64
}

// RunState is the per-attempt state replaced wholesale on every level start
type RunState struct {
	LevelIndex      int
	GoalX           float64
	ChaserSpeed     float64
	WaitingForEnter bool
	OverlayText     string
	HUDText         string
}
