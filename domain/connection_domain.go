package domain

import (
	"fmt"
)

var (
	MessageSuccessGetConnections = "success get connections"
	MessageSuccessFollowUser     = "user followed successfully"
	MessageSuccessUnfollowUser   = "user unfollowed successfully"
	MessageSuccessGetFollowers   = "success get followers"
	MessageSuccessGetFollowed    = "success get followed users"

	MessageFailedGetConnections = "failed to get connections"
	MessageFailedFollowUser     = "failed to follow user"
	MessageFailedUnfollowUser   = "failed to unfollow user"
	MessageFailedGetFollowers   = "failed to get followers"
	MessageFailedGetFollowed    = "failed to get followed users"

	ErrConnectionNotFound    = fmt.Errorf("%w: a connection with this ID does not exist", ErrNotFound)
	ErrAlreadyFollowing      = fmt.Errorf("%w: the user already follows this account", ErrConflict)
	ErrForbiddenFollowUser   = fmt.Errorf("%w: you must be logged in as the user of the account to follow another user", ErrForbidden)
	ErrForbiddenUnfollowUser = fmt.Errorf("%w: you must be logged in as the user of the account or an admin to unfollow someone", ErrForbidden)
)
