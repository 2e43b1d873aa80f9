package repositories

type Repos struct {
	Ticket            TicketRepo
	Translation       TranslationRepo
	Project           ProjectRepo
	User              UserRepo
	StandardReply     StandardReplyRepo
	RejectionCategory RejectionCategoryRepo
	Preference        PreferenceRepo
}

func New() *Repos {
	return &Repos{
		Ticket:            &DBTicketRepo{},
		Translation:       &DBTranslationRepo{},
		Project:           &DBProjectRepo{},
		User:              &DBUserRepo{},
		StandardReply:     &DBStandardReplyRepo{},
		RejectionCategory: &DBRejectionCategoryRepo{},
		Preference:        &DBPreferenceRepo{},
	}
}
