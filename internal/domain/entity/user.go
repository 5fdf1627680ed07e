package entity

import (
	"time"
)

type User struct {
	ID       string `json:"id" firestore:"id"`
	SellerID int    `json:"seller_id" firestore:"sellerId"`
	Email    string `json:"email" firestore:"email"`
	Username string `json:"username" firestore:"username"`
	Phone    string `json:"phone,omitempty" firestore:"phone,omitempty"`

	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updated_at" firestore:"updatedAt"`
}
