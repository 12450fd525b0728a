package schemas

// allModels lists every model in declaration order.
func allModels() []*Model {
	return []*Model{
		userModel,
		infoModel,
		accountModel,
		sessionModel,
		verificationTokenModel,
		voteModel,
		categoryModel,
		newsItemModel,
		pollModel,
		blogModel,
		pollOptionModel,
		authorModel,
		blogLikeModel,
		blogAuthorModel,
	}
}
