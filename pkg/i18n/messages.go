package i18n

var enMessages = map[Key]string{
	ErrBadRequest:    "Invalid request",
	ErrInvalidJSON:   "Invalid JSON in request body",
	ErrUnauthorized:  "Unauthorized",
	ErrForbidden:     "Forbidden",
	ErrNotFound:      "Not found",
	ErrInternal:      "An error occurred. Please try again.",
	ErrTooMany:       "Too many requests. Please try again later.",
	ErrNotConfigured: "Service not configured",

	AuthMissingHeader:  "Missing authorization header",
	AuthInvalidToken:   "Invalid token",
	AuthTokenExpired:   "Token expired",
	AuthLoginFailed:    "Invalid email or password",
	AuthAdminOnly:      "Admin access required",
	AuthDuplicateEmail: "This email is already registered",
	AuthRegisterFailed: "Registration failed",
	AuthPasswordRules:  "Passwords must match and be at least 6 characters",

	PostNotFound:      "Post not found",
	PostRequired:      "Please fill in all required fields",
	PostFetchFailed:   "Failed to fetch posts",
	PostSaveFailed:    "Failed to save post",
	PostDeleteFailed:  "Failed to delete post",
	CommentNotFound:   "Comment not found",
	CommentEmpty:      "Comment text is required",
	CommentBadParent:  "Reply target does not belong to this post",
	CommentPostFailed: "Failed to post comment. Please try again.",
	CommentDelFailed:  "Failed to delete comment",

	GalleryFetchFailed:  "Failed to fetch gallery",
	GallerySaveFailed:   "Failed to save gallery image",
	GalleryDeleteFailed: "Failed to delete gallery image",
	UploadInvalidImage:  "Please select an image file under 5MB",
	UploadFailed:        "Upload failed",

	NewsletterSubscribed:    "Thanks for subscribing!",
	NewsletterAlready:       "This email is already subscribed",
	NewsletterInvalidEmail:  "Please enter a valid email",
	NewsletterSubFailed:     "Failed to subscribe. Please try again.",
	NewsletterFillAll:       "Please fill all fields",
	NewsletterSendFailed:    "Failed to send newsletter",
	NewsletterNotConfigured: "Newsletter service not configured. Please set RESEND_API_KEY.",
	SubscriberFetchFailed:   "Failed to fetch subscribers",
	SubscriberDeleteFailed:  "Failed to delete subscriber",

	ProfileFetchFailed:  "Failed to load profile",
	ProfileUpdateFailed: "Failed to update profile",
	ProfileRequired:     "Name and email are required",
}

var esMessages = map[Key]string{
	ErrBadRequest:    "Solicitud inválida",
	ErrInvalidJSON:   "JSON inválido en el cuerpo de la solicitud",
	ErrUnauthorized:  "No autorizado",
	ErrForbidden:     "Prohibido",
	ErrNotFound:      "No encontrado",
	ErrInternal:      "Ocurrió un error. Inténtalo de nuevo.",
	ErrTooMany:       "Demasiadas solicitudes. Inténtalo más tarde.",
	ErrNotConfigured: "Servicio no configurado",

	AuthMissingHeader:  "Falta el encabezado de autorización",
	AuthInvalidToken:   "Token inválido",
	AuthTokenExpired:   "Token expirado",
	AuthLoginFailed:    "Correo o contraseña incorrectos",
	AuthAdminOnly:      "Se requiere acceso de administrador",
	AuthDuplicateEmail: "Este correo ya está registrado",
	AuthRegisterFailed: "Falló el registro",
	AuthPasswordRules:  "Las contraseñas deben coincidir y tener al menos 6 caracteres",

	PostNotFound:      "Publicación no encontrada",
	PostRequired:      "Completa todos los campos obligatorios",
	PostFetchFailed:   "No se pudieron cargar las publicaciones",
	PostSaveFailed:    "No se pudo guardar la publicación",
	PostDeleteFailed:  "No se pudo eliminar la publicación",
	CommentNotFound:   "Comentario no encontrado",
	CommentEmpty:      "El comentario no puede estar vacío",
	CommentBadParent:  "El comentario al que respondes no pertenece a esta publicación",
	CommentPostFailed: "No se pudo publicar el comentario. Inténtalo de nuevo.",
	CommentDelFailed:  "No se pudo eliminar el comentario",

	GalleryFetchFailed:  "No se pudo cargar la galería",
	GallerySaveFailed:   "No se pudo guardar la imagen",
	GalleryDeleteFailed: "No se pudo eliminar la imagen",
	UploadInvalidImage:  "Selecciona una imagen de menos de 5MB",
	UploadFailed:        "Falló la subida",

	NewsletterSubscribed:   "¡Gracias por suscribirte!",
	NewsletterAlready:      "Este correo ya está suscrito",
	NewsletterInvalidEmail: "Introduce un correo válido",
	NewsletterSubFailed:    "No se pudo completar la suscripción. Inténtalo de nuevo.",
	NewsletterFillAll:      "Completa todos los campos",
	NewsletterSendFailed:   "No se pudo enviar el boletín",
	SubscriberFetchFailed:  "No se pudieron cargar los suscriptores",
	SubscriberDeleteFailed: "No se pudo eliminar el suscriptor",

	ProfileFetchFailed:  "No se pudo cargar el perfil",
	ProfileUpdateFailed: "No se pudo actualizar el perfil",
	ProfileRequired:     "El nombre y el correo son obligatorios",
}
