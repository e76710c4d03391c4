package mapping

import (
	"time"
)

type User struct {
	ID        int
	Name      string
	DeletedAt *time.Time
	Posts     []*Post
	Profile   *Profile
}

type Profile struct {
	ID     int
	UserID int
	Bio    string
}

func (p *Profile) GlobalScopes() []GlobalScope {
	return []GlobalScope{NamedScope("tenant")}
}

type Post struct {
	ID            int
	Title         string
	UserID        int
	User          *User
	LatestComment *Comment `neuron:"foreign=PostID"`
	Comments      []*Comment
	Tags          []*Tag `neuron:"many2many"`
}

func (p *Post) ScopeRelation(relation string, scope *RelationScope) {
	if relation == "latest_comment" {
		scope.Where("status", "approved")
	}
}

type Comment struct {
	ID       int
	PostID   int
	Body     string
	Status   string
	Archived time.Time `neuron:"soft_delete;name=archived_at"`
}

func (c *Comment) TableName() string {
	return "post_comments"
}

type Tag struct {
	ID   int `neuron:"type=pk;name=tag_id"`
	Name string
}

type Ignored struct {
	ID     int
	Hidden string `neuron:"-"`
	secret string
}

type NoPrimary struct {
	Name string
}

type UnmappedRelation struct {
	ID    int
	Other *NoPrimary
}
