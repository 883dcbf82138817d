package model

// FFProbeOutput is the subset of ffprobe's -show_format JSON we consume.
type FFProbeOutput struct {
	Format FFProbeFormat `json:"format"`
}

type FFProbeFormat struct {
	Duration string `json:"duration"`
}
