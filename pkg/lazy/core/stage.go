package core

import "github.com/google/uuid"

// StageInfo identifies one stage of a chain. Depth is 0 for the root.
type StageInfo struct {
	ID    uuid.UUID
	Name  string
	Depth int
}

func NewStageInfo(name string, depth int) StageInfo {
	return StageInfo{
		ID:    uuid.New(),
		Name:  name,
		Depth: depth,
	}
}

// Renamed returns a copy of info with a fresh id and the given name.
func (info StageInfo) Renamed(name string) StageInfo {
	return NewStageInfo(name, info.Depth)
}
