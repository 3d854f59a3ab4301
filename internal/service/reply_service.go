package service

import (
	"context"
	"strings"

	"ripple/internal/models"
	"ripple/internal/repository"
)

// ReplyService provides reply business logic.
type ReplyService struct {
	replyRepo  repository.ReplyRepository
	threadRepo repository.ThreadRepository
}

type CreateReplyInput struct {
	UserID   uint
	ThreadID uint
	Content  string
	Image    string
}

// NewReplyService returns a new ReplyService.
func NewReplyService(replyRepo repository.ReplyRepository, threadRepo repository.ThreadRepository) *ReplyService {
	return &ReplyService{
		replyRepo:  replyRepo,
		threadRepo: threadRepo,
	}
}

// ListReplies returns the replies under a thread, newest first.
func (s *ReplyService) ListReplies(ctx context.Context, threadID uint, currentUserID uint) ([]*models.Reply, error) {
	if _, err := s.threadRepo.GetByID(ctx, threadID, 0); err != nil {
		return nil, err
	}
	return s.replyRepo.ListByThread(ctx, threadID, currentUserID)
}

// CreateReply creates a reply under an existing thread. The parent must
// exist; replies share the thread content rules.
func (s *ReplyService) CreateReply(ctx context.Context, in CreateReplyInput) (*models.Reply, error) {
	content := strings.TrimSpace(in.Content)
	if err := validateContent(content); err != nil {
		return nil, err
	}

	if _, err := s.threadRepo.GetByID(ctx, in.ThreadID, 0); err != nil {
		return nil, err
	}

	reply := &models.Reply{
		ThreadID:  in.ThreadID,
		Content:   content,
		Image:     in.Image,
		CreatedBy: in.UserID,
		UpdatedBy: in.UserID,
	}
	if err := s.replyRepo.Create(ctx, reply); err != nil {
		return nil, err
	}

	return s.replyRepo.GetByID(ctx, reply.ID)
}

// LikeReply likes a reply; the reply must exist.
func (s *ReplyService) LikeReply(ctx context.Context, userID, replyID uint) error {
	if _, err := s.replyRepo.GetByID(ctx, replyID); err != nil {
		return err
	}
	return s.replyRepo.Like(ctx, userID, replyID)
}

// UnlikeReply removes the user's like from a reply. Idempotent.
func (s *ReplyService) UnlikeReply(ctx context.Context, userID, replyID uint) error {
	return s.replyRepo.Unlike(ctx, userID, replyID)
}
