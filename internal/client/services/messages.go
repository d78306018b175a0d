package services

// User-facing notices.
const (
	MsgLoggedIn         = "Logged in successfully!"
	MsgLoginFailed      = "Login failed. Please try again."
	MsgRegistered       = "Account created successfully!"
	MsgRegisterFailed   = "Registration failed. Please try again."
	MsgLoggedOut        = "Logged out successfully!"
	MsgSessionExpired   = "Your session has expired. Please log in again."
	MsgCommentsFailed   = "Failed to load comments. Please try again later."
	MsgRepliesFailed    = "Failed to load replies."
	MsgSignInToComment  = "Please sign in to comment"
	MsgEnterComment     = "Please enter a comment"
	MsgCommentAdded     = "Comment added"
	MsgAddCommentFailed = "Failed to add comment. Please try again later."
	MsgSignInToReply    = "Please sign in to reply"
	MsgReplyAdded       = "Reply added"
	MsgAddReplyFailed   = "Failed to add reply. Please try again later."
	MsgSignInToLikeCmt  = "Please sign in to like comments"
	MsgLikeFailed       = "Failed to add like. Please try again later."
	MsgVideoFailed      = "Failed to load video. Please try again later."
	MsgSignInToLike     = "Please sign in to like videos"
	MsgLikeAdded        = "Added like"
	MsgLikeRemoved      = "Removed like"
	MsgSignInToDislike  = "Please sign in to dislike videos"
	MsgDislikeAdded     = "Added dislike"
	MsgDislikeRemoved   = "Removed dislike"
	MsgSignInToSave     = "Please sign in to save videos"
	MsgSaved            = "Added to saved videos"
	MsgUnsaved          = "Removed from saved videos"
	MsgSignInToSub      = "Please sign in to subscribe to channels"
	MsgSubscribed       = "Subscribed to channel"
	MsgUnsubscribed     = "Unsubscribed from channel"
	MsgVideosFailed     = "Failed to load videos. Please try again later."
	MsgChannelFailed    = "Failed to load channel. Please try again later."
	MsgHistoryAuth      = "You need to be logged in to view your history"
	MsgWatchLaterAuth   = "You need to be logged in to view your Watch Later list"
	MsgLikedAuth        = "You need to be logged in to view your liked videos"
	MsgSettingsAuth     = "You need to be logged in to access settings"
	MsgProfileUpdated   = "Profile updated successfully"
	MsgAvatarUpdated    = "Avatar updated successfully"
	MsgCoverUpdated     = "Cover image updated successfully"
	MsgUpdateFailed     = "Update failed. Please try again."
)
