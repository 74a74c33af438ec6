package i18n

const (
	ErrBadRequest    Key = "error.bad_request"
	ErrInvalidJSON   Key = "error.invalid_json"
	ErrUnauthorized  Key = "error.unauthorized"
	ErrForbidden     Key = "error.forbidden"
	ErrNotFound      Key = "error.not_found"
	ErrInternal      Key = "error.internal"
	ErrTooMany       Key = "error.too_many_requests"
	ErrNotConfigured Key = "error.not_configured"

	AuthMissingHeader  Key = "auth.missing_header"
	AuthInvalidToken   Key = "auth.invalid_token"
	AuthTokenExpired   Key = "auth.token_expired"
	AuthLoginFailed    Key = "auth.login_failed"
	AuthAdminOnly      Key = "auth.admin_only"
	AuthDuplicateEmail Key = "auth.duplicate_email"
	AuthRegisterFailed Key = "auth.register_failed"
	AuthPasswordRules  Key = "auth.password_rules"

	PostNotFound      Key = "post.not_found"
	PostRequired      Key = "post.required_fields"
	PostFetchFailed   Key = "post.fetch_failed"
	PostSaveFailed    Key = "post.save_failed"
	PostDeleteFailed  Key = "post.delete_failed"
	CommentNotFound   Key = "comment.not_found"
	CommentEmpty      Key = "comment.empty"
	CommentBadParent  Key = "comment.bad_parent"
	CommentPostFailed Key = "comment.post_failed"
	CommentDelFailed  Key = "comment.delete_failed"

	GalleryFetchFailed  Key = "gallery.fetch_failed"
	GallerySaveFailed   Key = "gallery.save_failed"
	GalleryDeleteFailed Key = "gallery.delete_failed"
	UploadInvalidImage  Key = "upload.invalid_image"
	UploadFailed        Key = "upload.failed"

	NewsletterSubscribed    Key = "newsletter.subscribed"
	NewsletterAlready       Key = "newsletter.already_subscribed"
	NewsletterInvalidEmail  Key = "newsletter.invalid_email"
	NewsletterSubFailed     Key = "newsletter.subscribe_failed"
	NewsletterFillAll       Key = "newsletter.fill_all_fields"
	NewsletterSendFailed    Key = "newsletter.send_failed"
	NewsletterNotConfigured Key = "newsletter.not_configured"
	SubscriberFetchFailed   Key = "subscriber.fetch_failed"
	SubscriberDeleteFailed  Key = "subscriber.delete_failed"

	ProfileFetchFailed  Key = "profile.fetch_failed"
	ProfileUpdateFailed Key = "profile.update_failed"
	ProfileRequired     Key = "profile.required_fields"
)
