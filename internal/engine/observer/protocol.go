package observer

import (
	"github.com/OCharnyshevich/voxel-engine/internal/engine/material"
	"github.com/OCharnyshevich/voxel-engine/internal/engine/render"
)

// Version of the observer wire protocol.
const Version = "1.0"

// Bootstrap is the JSON document served before a websocket subscription:
// everything a viewer needs to interpret frames.
type Bootstrap struct {
	ProtocolVersion string              `json:"protocol_version"`
	WorldID         string              `json:"world_id"`
	Seed            int64               `json:"seed"`
	ChunkSize       int                 `json:"chunk_size"`
	WorldHeight     int                 `json:"world_height"`
	Version         uint64              `json:"version"`
	Palette         []material.Material `json:"palette"`
}

// ChunkFrame carries the visible-block descriptors of one chunk.
type ChunkFrame struct {
	CX     int                 `json:"cx"`
	CZ     int                 `json:"cz"`
	Blocks []render.Descriptor `json:"blocks"`
}

// Frame is one zstd-compressed websocket message: the full visible world
// at a store version. Consumers diff versions themselves.
type Frame struct {
	Version uint64       `json:"version"`
	Chunks  []ChunkFrame `json:"chunks"`
}
