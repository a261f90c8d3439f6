package service

import (
	"context"
	"errors"
	"strings"

	"github.com/AbegundeStephen/The-Interactive-Gallery/internal/common"
	"github.com/AbegundeStephen/The-Interactive-Gallery/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const maxCommentLength = 500

// CreateCommentParams userID 为 nil 时为匿名评论，取 AuthorName/AuthorEmail 做展示
type CreateCommentParams struct {
	ImageID     string
	UserID      *uint
	AuthorName  string
	AuthorEmail string
	Content     string
}

// CreateComment 发表评论。目标图片不在缓存时先回源物化，
// 只有上游也没有该图时才返回 not_found
func (s *CommentService) CreateComment(ctx context.Context, params CreateCommentParams) (*model.CommentWithAuthor, error) {
	content := strings.TrimSpace(params.Content)
	if content == "" {
		return nil, common.NewValidationError("评论内容不能为空")
	}
	if len([]rune(content)) > maxCommentLength {
		return nil, common.NewValidationError("评论内容不能超过 500 字")
	}

	if _, err := s.images.EnsureImage(ctx, params.ImageID); err != nil {
		return nil, err
	}

	comment := &model.Comment{
		ID:          uuid.NewString(),
		ImageID:     params.ImageID,
		UserID:      params.UserID,
		Content:     content,
		AuthorName:  strings.TrimSpace(params.AuthorName),
		AuthorEmail: strings.TrimSpace(params.AuthorEmail),
	}
	if err := s.commentStore.Create(comment); err != nil {
		return nil, common.NewInternalError("发表评论失败")
	}

	stored, err := s.commentStore.FindByID(comment.ID)
	if err != nil {
		return nil, common.NewInternalError("读取评论失败")
	}
	return stored, nil
}

// ListComments 图片评论列表，最新在前，带精确分页信息
func (s *CommentService) ListComments(imageID string, page, limit int) ([]model.CommentWithAuthor, Pagination, error) {
	page, limit = normalizePagination(page, limit)
	comments, total, err := s.commentStore.ListByImage(imageID, (page-1)*limit, limit)
	if err != nil {
		return nil, Pagination{}, common.NewInternalError("获取评论失败")
	}
	return comments, newPagination(page, limit, total), nil
}

// UpdateComment 修改自己的评论；评论不存在或不属于该用户时返回 not_found
func (s *CommentService) UpdateComment(id string, userID uint, content string) (*model.CommentWithAuthor, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, common.NewValidationError("评论内容不能为空")
	}
	if len([]rune(content)) > maxCommentLength {
		return nil, common.NewValidationError("评论内容不能超过 500 字")
	}

	affected, err := s.commentStore.UpdateContent(id, userID, content)
	if err != nil {
		return nil, common.NewInternalError("修改评论失败")
	}
	if affected == 0 {
		return nil, common.NewNotFoundError("评论不存在或无权修改")
	}

	stored, err := s.commentStore.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.NewNotFoundError("评论不存在")
		}
		return nil, common.NewInternalError("读取评论失败")
	}
	return stored, nil
}

// DeleteComment 删除自己的评论
func (s *CommentService) DeleteComment(id string, userID uint) error {
	affected, err := s.commentStore.DeleteOwned(id, userID)
	if err != nil {
		return common.NewInternalError("删除评论失败")
	}
	if affected == 0 {
		return common.NewNotFoundError("评论不存在或无权删除")
	}
	return nil
}

// ListUserComments 当前用户的评论列表，带所评图片摘要
func (s *CommentService) ListUserComments(userID uint, page, limit int) ([]model.CommentWithImage, Pagination, error) {
	page, limit = normalizePagination(page, limit)
	comments, total, err := s.commentStore.ListByUser(userID, (page-1)*limit, limit)
	if err != nil {
		return nil, Pagination{}, common.NewInternalError("获取评论失败")
	}
	return comments, newPagination(page, limit, total), nil
}
