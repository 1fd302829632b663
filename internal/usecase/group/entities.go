package group

import "time"

type CreateGroupInput struct {
	Title string `json:"title"`
}

type GroupDTO struct {
	GroupID      string    `json:"group_id"`
	Slug         string    `json:"slug"`
	Title        string    `json:"title"`
	SharePath    string    `json:"share_path"`
	CreatedAt    time.Time `json:"created_at"`
	LastActiveAt time.Time `json:"last_active_at"`
}

type ApproverDTO struct {
	ApproverID string    `json:"approver_id"`
	Name       string    `json:"name"`
	CreatedAt  time.Time `json:"created_at"`
}

type CheckDTO struct {
	CheckID      string     `json:"check_id"`
	ApproverID   string     `json:"approver_id"`
	ApproverName string     `json:"approver_name"`
	Approved     bool       `json:"approved"`
	ApprovedAt   *time.Time `json:"approved_at"`
}

type CommentDTO struct {
	CommentID string    `json:"comment_id"`
	Author    string    `json:"author"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"created_at"`
}

type ItemDTO struct {
	ItemID    string       `json:"item_id"`
	Title     string       `json:"title"`
	Requester *string      `json:"requester"`
	Details   string       `json:"details"`
	CreatedAt time.Time    `json:"created_at"`
	Approved  bool         `json:"approved"`
	Checks    []CheckDTO   `json:"checks"`
	Comments  []CommentDTO `json:"comments"`
}

// GroupViewDTO is the full tree the group page renders.
type GroupViewDTO struct {
	GroupDTO
	Approvers []ApproverDTO `json:"approvers"`
	Items     []ItemDTO     `json:"items"`
}
