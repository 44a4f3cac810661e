package service

import (
	"context"
	"fmt"
	"net/mail"
	"net/url"
	"strings"

	"github.com/rocketscienceinc/tictactoe-sessions/internal/apperror"
)

var ErrInvalidEmail = fmt.Errorf("%w: email address", apperror.ErrInvalidInput)

const inviteSubject = "You are invited to a game of tic-tac-toe"

type Mailer interface {
	Send(ctx context.Context, to, subject, body string) error
}

type InviteService interface {
	// JoinURL is the address a second player opens to join the session.
	JoinURL(sessionID string) (string, error)
	Invite(ctx context.Context, sessionID, inviter, email string) error
}

type inviteService struct {
	publicURL string
	mailer    Mailer
}

func NewInviteService(publicURL string, mailer Mailer) InviteService {
	return &inviteService{
		publicURL: publicURL,
		mailer:    mailer,
	}
}

func (that *inviteService) JoinURL(sessionID string) (string, error) {
	joinURL, err := url.JoinPath(that.publicURL, "sessions", sessionID)
	if err != nil {
		return "", fmt.Errorf("failed to build join url: %w", err)
	}

	return joinURL, nil
}

func (that *inviteService) Invite(ctx context.Context, sessionID, inviter, email string) error {
	address, err := mail.ParseAddress(strings.TrimSpace(email))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidEmail, err)
	}

	joinURL, err := that.JoinURL(sessionID)
	if err != nil {
		return err
	}

	body := fmt.Sprintf("%s invites you to play tic-tac-toe.\n\nJoin the game: %s\n", inviter, joinURL)

	if err = that.mailer.Send(ctx, address.Address, inviteSubject, body); err != nil {
		return fmt.Errorf("failed to send invite: %w", err)
	}

	return nil
}
