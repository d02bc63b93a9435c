package auth

import (
	"context"

	"go.uber.org/zap"
)

func (s *serv) Logout(ctx context.Context, sessionID string) error {
	if err := s.authRepo.DeleteSession(ctx, sessionID); err != nil {
		return err
	}
	s.logger.Debug("session closed", zap.String("session_id", sessionID))
	return nil
}
