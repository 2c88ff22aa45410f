// Cinelog - Movie Catalog and Community Ratings API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinelog

package api

import (
	"errors"
	"net/http"

	"github.com/tomtom215/cinelog/internal/auth"
	"github.com/tomtom215/cinelog/internal/models"
	"github.com/tomtom215/cinelog/internal/store"
)

// commentRef is the slice of a POST body the comment policy needs: which
// existing comment the request is about, and the declared author on create.
type commentRef struct {
	CommentID string `json:"comment_id"`
	Email     string `json:"email"`
}

// CommentsPolicy encodes the access model for the comments group:
//
//   - GET: any bearer-authenticated caller.
//   - POST: premium only. Creating a comment additionally requires the
//     declared author email match the caller; editing one requires the
//     caller own the comment named by comment_id in the body. A missing
//     target comment surfaces as 404, never as a bare 403.
//   - DELETE: admin, or a premium caller owning the comment named by the
//     path id. Missing comment surfaces as 404.
func (p *Policies) CommentsPolicy() auth.PolicyTable {
	return auth.PolicyTable{
		http.MethodGet: {
			Scheme: auth.SchemeAlways(auth.SchemeJWT),
			Allow:  auth.AllowAll,
		},
		http.MethodPost: {
			Scheme: auth.SchemeAlways(auth.SchemeJWT),
			Allow:  p.allowCommentPost,
		},
		http.MethodDelete: {
			Scheme: auth.SchemeAlways(auth.SchemeJWT),
			Allow:  p.allowCommentDelete,
		},
	}
}

func (p *Policies) allowCommentPost(r *http.Request, id auth.Identity) (bool, error) {
	if id.Role != models.RolePremiumUser {
		return false, nil
	}

	var ref commentRef
	if err := peekBody(r, &ref); err != nil {
		// A body the policy cannot read will not pass the handler either;
		// denying here with 403 would mask the real problem.
		return false, auth.NewStatusError(http.StatusBadRequest, "request body is not valid JSON")
	}

	// Create path: no existing comment referenced, the declared author
	// must be the caller.
	if pathContains(r, "comment") {
		return ref.Email == "" || ref.Email == id.Subject, nil
	}

	// Edit path: the caller must own the referenced comment.
	return p.callerOwnsComment(r, id, ref.CommentID)
}

func (p *Policies) allowCommentDelete(r *http.Request, id auth.Identity) (bool, error) {
	if p.isAdmin(id) {
		return true, nil
	}
	if id.Role != models.RolePremiumUser {
		return false, nil
	}
	return p.callerOwnsComment(r, id, pathTail(r))
}

func (p *Policies) callerOwnsComment(r *http.Request, id auth.Identity, commentID string) (bool, error) {
	if commentID == "" {
		return false, auth.NewStatusError(http.StatusNotFound, "comment not found")
	}
	comment, err := p.store.GetCommentByID(r.Context(), commentID)
	if errors.Is(err, store.ErrNotFound) {
		return false, auth.NewStatusError(http.StatusNotFound, "comment not found")
	}
	if err != nil {
		return false, err
	}
	return comment.Email == id.Subject, nil
}
