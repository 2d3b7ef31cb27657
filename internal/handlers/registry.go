package handlers

// AppHandlers holds every handler of the application.
type AppHandlers struct {
	AuthHandler         *AuthHandler
	UserHandler         *UserHandler
	FormationHandler    *FormationHandler
	CapsuleHandler      *CapsuleHandler
	TestHandler         *TestHandler
	InterviewHandler    *InterviewHandler
	JobOfferHandler     *JobOfferHandler
	WorkshopHandler     *WorkshopHandler
	NotificationHandler *NotificationHandler
	SearchHandler       *SearchHandler
	FileHandler         *FileHandler
}
