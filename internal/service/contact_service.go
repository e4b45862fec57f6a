package service

import (
	"context"
	"fmt"

	"Club_Portal/internal/pkg"

	"go.uber.org/zap"
)

type ContactInput struct {
	Name    string `json:"name" binding:"required,max=100"`
	Email   string `json:"email" binding:"required,email"`
	Subject string `json:"subject" binding:"max=200"`
	Message string `json:"message" binding:"required,max=5000"`
}

type ContactService struct {
	mailer   pkg.Mailer
	inbox    string
	clubName string
	log      *zap.Logger
}

// NewContactService mailer 为 nil 或未配置收件箱时提交会返回 ErrMailDisabled
func NewContactService(mailer pkg.Mailer, inbox, clubName string, log *zap.Logger) *ContactService {
	return &ContactService{mailer: mailer, inbox: inbox, clubName: clubName, log: log}
}

func (s *ContactService) Submit(ctx context.Context, in ContactInput) error {
	if s.mailer == nil || s.inbox == "" {
		return ErrMailDisabled
	}
	subject := in.Subject
	if subject == "" {
		subject = fmt.Sprintf("[%s] message from %s", s.clubName, in.Name)
	}
	body := pkg.ContactHTML(s.clubName, in.Name, in.Email, in.Message)
	if err := s.mailer.Send(ctx, s.inbox, in.Email, subject, body); err != nil {
		s.log.Error("contact mail failed", zap.String("from", in.Email), zap.Error(err))
		return err
	}
	return nil
}
