package service

import (
	"context"
	"sort"
	"sync"

	"github.com/Kotlang/publishGo/db"
	"github.com/Kotlang/publishGo/models"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// fakeDb is an in-memory PublishDbInterface. One mutex guards all maps, so
// the favorite fake mutates relation and counter as a single atomic unit,
// mirroring the transactional contract of the real repository.
type fakeDb struct {
	mu        sync.Mutex
	articles  map[string]*models.ArticleModel
	profiles  map[string]*models.ProfileModel
	follows   map[string]*models.FollowEdgeModel
	favorites map[string]*models.FavoriteModel
	tags      map[string]*models.ArticleTagModel
	comments  map[string]*models.CommentModel

	articleListCalls int
}

func newFakeDb() *fakeDb {
	return &fakeDb{
		articles:  map[string]*models.ArticleModel{},
		profiles:  map[string]*models.ProfileModel{},
		follows:   map[string]*models.FollowEdgeModel{},
		favorites: map[string]*models.FavoriteModel{},
		tags:      map[string]*models.ArticleTagModel{},
		comments:  map[string]*models.CommentModel{},
	}
}

func (f *fakeDb) Article() db.ArticleRepositoryInterface   { return &fakeArticleRepo{f} }
func (f *fakeDb) Profile() db.ProfileRepositoryInterface   { return &fakeProfileRepo{f} }
func (f *fakeDb) Follow() db.FollowRepositoryInterface     { return &fakeFollowRepo{f} }
func (f *fakeDb) Favorite() db.FavoriteRepositoryInterface { return &fakeFavoriteRepo{f} }
func (f *fakeDb) Tag() db.TagRepositoryInterface           { return &fakeTagRepo{f} }
func (f *fakeDb) Comment() db.CommentRepositoryInterface   { return &fakeCommentRepo{f} }

func (f *fakeDb) seedProfile(userId, username string) *models.ProfileModel {
	f.mu.Lock()
	defer f.mu.Unlock()
	profile := &models.ProfileModel{UserId: userId, Username: username, Email: username + "@example.com"}
	f.profiles[userId] = profile
	return profile
}

func (f *fakeDb) seedArticle(articleId, slug, authorId, title string, tags []string, createdOn int64) *models.ArticleModel {
	f.mu.Lock()
	defer f.mu.Unlock()
	article := &models.ArticleModel{
		ArticleId: articleId,
		Slug:      slug,
		Title:     title,
		Tags:      tags,
		AuthorId:  authorId,
		CreatedOn: createdOn,
	}
	f.articles[articleId] = article
	return article
}

func (f *fakeDb) favoritesCount(articleId string) int64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.articles[articleId].FavoritesCount
}

func (f *fakeDb) favoriteRelationSize(articleId string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	size := 0
	for _, favorite := range f.favorites {
		if favorite.ArticleId == articleId {
			size++
		}
	}
	return size
}

func (f *fakeDb) edgeCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.follows)
}

type fakeArticleRepo struct{ f *fakeDb }

func (r *fakeArticleRepo) FindBySlug(ctx context.Context, slug string) (*models.ArticleModel, error) {
	r.f.mu.Lock()
	defer r.f.mu.Unlock()
	for _, article := range r.f.articles {
		if article.Slug == slug {
			copy := *article
			return &copy, nil
		}
	}
	return nil, nil
}

func (r *fakeArticleRepo) FindById(ctx context.Context, articleId string) (*models.ArticleModel, error) {
	r.f.mu.Lock()
	defer r.f.mu.Unlock()
	if article, ok := r.f.articles[articleId]; ok {
		copy := *article
		return &copy, nil
	}
	return nil, nil
}

func (r *fakeArticleRepo) Create(ctx context.Context, article *models.ArticleModel) error {
	r.f.mu.Lock()
	defer r.f.mu.Unlock()
	for _, existing := range r.f.articles {
		if existing.Slug == article.Slug {
			return status.Error(codes.AlreadyExists, "Slug is already taken.")
		}
	}
	article.ArticleId = article.Id()
	copy := *article
	r.f.articles[article.ArticleId] = &copy
	return nil
}

func (r *fakeArticleRepo) Save(ctx context.Context, article *models.ArticleModel) error {
	r.f.mu.Lock()
	defer r.f.mu.Unlock()
	copy := *article
	r.f.articles[article.Id()] = &copy
	return nil
}

func (r *fakeArticleRepo) DeleteById(ctx context.Context, articleId string) error {
	r.f.mu.Lock()
	defer r.f.mu.Unlock()
	delete(r.f.articles, articleId)
	return nil
}

func (r *fakeArticleRepo) List(ctx context.Context, filter db.ArticleListFilter) ([]models.ArticleModel, int64, error) {
	r.f.mu.Lock()
	defer r.f.mu.Unlock()
	r.f.articleListCalls++

	matching := []models.ArticleModel{}
	for _, article := range r.f.articles {
		if len(filter.AuthorIds) > 0 && !containsString(filter.AuthorIds, article.AuthorId) {
			continue
		}
		if len(filter.Tag) > 0 && !containsString(article.Tags, filter.Tag) {
			continue
		}
		if len(filter.Ids) > 0 && !containsString(filter.Ids, article.ArticleId) {
			continue
		}
		matching = append(matching, *article)
	}

	sort.Slice(matching, func(i, j int) bool {
		if matching[i].CreatedOn != matching[j].CreatedOn {
			return matching[i].CreatedOn > matching[j].CreatedOn
		}
		return matching[i].ArticleId > matching[j].ArticleId
	})

	totalCount := int64(len(matching))
	if filter.Offset > 0 {
		if filter.Offset >= totalCount {
			return []models.ArticleModel{}, totalCount, nil
		}
		matching = matching[filter.Offset:]
	}
	if filter.Limit > 0 && filter.Limit < int64(len(matching)) {
		matching = matching[:filter.Limit]
	}
	return matching, totalCount, nil
}

type fakeProfileRepo struct{ f *fakeDb }

func (r *fakeProfileRepo) FindById(ctx context.Context, userId string) (*models.ProfileModel, error) {
	r.f.mu.Lock()
	defer r.f.mu.Unlock()
	if profile, ok := r.f.profiles[userId]; ok {
		copy := *profile
		return &copy, nil
	}
	return nil, nil
}

func (r *fakeProfileRepo) FindByIds(ctx context.Context, userIds []string) ([]models.ProfileModel, error) {
	r.f.mu.Lock()
	defer r.f.mu.Unlock()
	profiles := []models.ProfileModel{}
	for _, userId := range userIds {
		if profile, ok := r.f.profiles[userId]; ok {
			profiles = append(profiles, *profile)
		}
	}
	return profiles, nil
}

func (r *fakeProfileRepo) FindByUsername(ctx context.Context, username string) (*models.ProfileModel, error) {
	r.f.mu.Lock()
	defer r.f.mu.Unlock()
	for _, profile := range r.f.profiles {
		if profile.Username == username {
			copy := *profile
			return &copy, nil
		}
	}
	return nil, nil
}

func (r *fakeProfileRepo) FindByEmail(ctx context.Context, email string) (*models.ProfileModel, error) {
	r.f.mu.Lock()
	defer r.f.mu.Unlock()
	for _, profile := range r.f.profiles {
		if profile.Email == email {
			copy := *profile
			return &copy, nil
		}
	}
	return nil, nil
}

func (r *fakeProfileRepo) Create(ctx context.Context, profile *models.ProfileModel) error {
	r.f.mu.Lock()
	defer r.f.mu.Unlock()
	for _, existing := range r.f.profiles {
		if existing.Username == profile.Username || existing.Email == profile.Email {
			return status.Error(codes.AlreadyExists, "Username or email is already taken.")
		}
	}
	profile.UserId = profile.Id()
	copy := *profile
	r.f.profiles[profile.UserId] = &copy
	return nil
}

func (r *fakeProfileRepo) Save(ctx context.Context, profile *models.ProfileModel) error {
	r.f.mu.Lock()
	defer r.f.mu.Unlock()
	copy := *profile
	r.f.profiles[profile.Id()] = &copy
	return nil
}

type fakeFollowRepo struct{ f *fakeDb }

func (r *fakeFollowRepo) Save(ctx context.Context, edge *models.FollowEdgeModel) error {
	r.f.mu.Lock()
	defer r.f.mu.Unlock()
	edge.EdgeId = edge.Id()
	copy := *edge
	r.f.follows[edge.EdgeId] = &copy
	return nil
}

func (r *fakeFollowRepo) Delete(ctx context.Context, followerId, followeeId string) error {
	r.f.mu.Lock()
	defer r.f.mu.Unlock()
	delete(r.f.follows, models.GetFollowEdgeId(followerId, followeeId))
	return nil
}

func (r *fakeFollowRepo) IsFollowing(ctx context.Context, followerId, followeeId string) (bool, error) {
	r.f.mu.Lock()
	defer r.f.mu.Unlock()
	_, ok := r.f.follows[models.GetFollowEdgeId(followerId, followeeId)]
	return ok, nil
}

func (r *fakeFollowRepo) FolloweesOf(ctx context.Context, followerId string) ([]string, error) {
	r.f.mu.Lock()
	defer r.f.mu.Unlock()
	followees := []string{}
	for _, edge := range r.f.follows {
		if edge.FollowerId == followerId {
			followees = append(followees, edge.FolloweeId)
		}
	}
	sort.Strings(followees)
	return followees, nil
}

func (r *fakeFollowRepo) FollowersOf(ctx context.Context, userId string, pageNumber, pageSize int64) ([]string, error) {
	r.f.mu.Lock()
	defer r.f.mu.Unlock()
	followers := []string{}
	for _, edge := range r.f.follows {
		if edge.FolloweeId == userId {
			followers = append(followers, edge.FollowerId)
		}
	}
	sort.Strings(followers)
	skip := pageNumber * pageSize
	if skip >= int64(len(followers)) {
		return []string{}, nil
	}
	followers = followers[skip:]
	if pageSize < int64(len(followers)) {
		followers = followers[:pageSize]
	}
	return followers, nil
}

type fakeFavoriteRepo struct{ f *fakeDb }

func (r *fakeFavoriteRepo) Add(ctx context.Context, userId, articleId string) (bool, error) {
	r.f.mu.Lock()
	defer r.f.mu.Unlock()
	favoriteId := models.GetFavoriteId(userId, articleId)
	if _, ok := r.f.favorites[favoriteId]; ok {
		return false, nil
	}
	r.f.favorites[favoriteId] = &models.FavoriteModel{
		FavoriteId: favoriteId,
		UserId:     userId,
		ArticleId:  articleId,
	}
	if article, ok := r.f.articles[articleId]; ok {
		article.FavoritesCount++
	}
	return true, nil
}

func (r *fakeFavoriteRepo) Remove(ctx context.Context, userId, articleId string) (bool, error) {
	r.f.mu.Lock()
	defer r.f.mu.Unlock()
	favoriteId := models.GetFavoriteId(userId, articleId)
	if _, ok := r.f.favorites[favoriteId]; !ok {
		return false, nil
	}
	delete(r.f.favorites, favoriteId)
	if article, ok := r.f.articles[articleId]; ok {
		article.FavoritesCount--
	}
	return true, nil
}

func (r *fakeFavoriteRepo) IsFavorited(ctx context.Context, userId, articleId string) (bool, error) {
	r.f.mu.Lock()
	defer r.f.mu.Unlock()
	_, ok := r.f.favorites[models.GetFavoriteId(userId, articleId)]
	return ok, nil
}

func (r *fakeFavoriteRepo) FavoriteIds(ctx context.Context, userId string) ([]string, error) {
	r.f.mu.Lock()
	defer r.f.mu.Unlock()
	articleIds := []string{}
	for _, favorite := range r.f.favorites {
		if favorite.UserId == userId {
			articleIds = append(articleIds, favorite.ArticleId)
		}
	}
	sort.Strings(articleIds)
	return articleIds, nil
}

func (r *fakeFavoriteRepo) PurgeArticle(ctx context.Context, articleId string) error {
	r.f.mu.Lock()
	defer r.f.mu.Unlock()
	for favoriteId, favorite := range r.f.favorites {
		if favorite.ArticleId == articleId {
			delete(r.f.favorites, favoriteId)
		}
	}
	return nil
}

type fakeTagRepo struct{ f *fakeDb }

func (r *fakeTagRepo) Record(ctx context.Context, tag string) error {
	r.f.mu.Lock()
	defer r.f.mu.Unlock()
	if existing, ok := r.f.tags[tag]; ok {
		existing.NumArticles++
		return nil
	}
	r.f.tags[tag] = &models.ArticleTagModel{Tag: tag, NumArticles: 1}
	return nil
}

func (r *fakeTagRepo) GetTagsRanked(ctx context.Context, limit int64) ([]models.ArticleTagModel, error) {
	r.f.mu.Lock()
	defer r.f.mu.Unlock()
	tags := []models.ArticleTagModel{}
	for _, tag := range r.f.tags {
		tags = append(tags, *tag)
	}
	sort.Slice(tags, func(i, j int) bool {
		if tags[i].NumArticles != tags[j].NumArticles {
			return tags[i].NumArticles > tags[j].NumArticles
		}
		return tags[i].Tag < tags[j].Tag
	})
	if limit > 0 && limit < int64(len(tags)) {
		tags = tags[:limit]
	}
	return tags, nil
}

type fakeCommentRepo struct{ f *fakeDb }

func (r *fakeCommentRepo) Save(ctx context.Context, comment *models.CommentModel) error {
	r.f.mu.Lock()
	defer r.f.mu.Unlock()
	copy := *comment
	r.f.comments[comment.Id()] = &copy
	return nil
}

func (r *fakeCommentRepo) FindById(ctx context.Context, commentId string) (*models.CommentModel, error) {
	r.f.mu.Lock()
	defer r.f.mu.Unlock()
	if comment, ok := r.f.comments[commentId]; ok {
		copy := *comment
		return &copy, nil
	}
	return nil, nil
}

func (r *fakeCommentRepo) DeleteById(ctx context.Context, commentId string) error {
	r.f.mu.Lock()
	defer r.f.mu.Unlock()
	delete(r.f.comments, commentId)
	return nil
}

func (r *fakeCommentRepo) GetComments(ctx context.Context, articleId string, pageNumber, pageSize int64) ([]models.CommentModel, error) {
	r.f.mu.Lock()
	defer r.f.mu.Unlock()
	comments := []models.CommentModel{}
	for _, comment := range r.f.comments {
		if comment.ArticleId == articleId {
			comments = append(comments, *comment)
		}
	}
	sort.Slice(comments, func(i, j int) bool {
		if comments[i].CreatedOn != comments[j].CreatedOn {
			return comments[i].CreatedOn > comments[j].CreatedOn
		}
		return comments[i].CommentId > comments[j].CommentId
	})
	skip := pageNumber * pageSize
	if skip >= int64(len(comments)) {
		return []models.CommentModel{}, nil
	}
	comments = comments[skip:]
	if pageSize > 0 && pageSize < int64(len(comments)) {
		comments = comments[:pageSize]
	}
	return comments, nil
}

func containsString(values []string, value string) bool {
	for _, v := range values {
		if v == value {
			return true
		}
	}
	return false
}
