package service

import (
	"sync"

	"omnirag/internal/rag"
)

// SettingsService holds the user-adjustable pipeline settings. Only the
// system instruction is configurable today.
type SettingsService struct {
	mu          sync.RWMutex
	instruction string
}

// NewSettingsService creates a settings service with the default
// system instruction.
func NewSettingsService() *SettingsService {
	return &SettingsService{}
}

// Instruction returns the current system instruction. An unset or
// cleared override falls back to the base instruction.
func (s *SettingsService) Instruction() string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.instruction == "" {
		return rag.BaseSystemInstruction
	}
	return s.instruction
}

// SetInstruction overrides the system instruction. An empty string
// restores the default.
func (s *SettingsService) SetInstruction(instruction string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.instruction = instruction
}
