package service

import "cineverse/internal/microservices/http-api/models"

// authorizeOwner is the ownership predicate applied before every mutation of
// a user-owned record. An empty requester (anonymous) never owns anything.
func authorizeOwner(ownerID, requesterID string) error {
	if requesterID == "" || ownerID != requesterID {
		return ErrForbidden
	}
	return nil
}

// canViewCollection allows the owner, or anyone when the collection is public.
func canViewCollection(collection *models.Collection, requesterID string) bool {
	return collection.IsPublic || authorizeOwner(collection.UserID, requesterID) == nil
}
