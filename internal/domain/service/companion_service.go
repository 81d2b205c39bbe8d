package service

import "context"

// ChatService talks to the generative model behind the companion chat.
type ChatService interface {
	Reply(ctx context.Context, prompt string) (string, error)
}

// FallStatus mirrors the camera service's status payload.
type FallStatus struct {
	FallDetected  bool `json:"fall_detected"`
	FallConfirmed bool `json:"fall_confirmed"`
}

// VisionService reads the camera-based fall detector.
type VisionService interface {
	FallStatus(ctx context.Context) (*FallStatus, error)

	// VideoFeedURL is the MJPEG stream the client should display.
	VideoFeedURL() string
}
