package response

import "github.com/newsdeskhq/newsdesk-backend/internal/usecase/homepage"

type HomepageResponse struct {
	FeaturedArticles []ArticleResponse  `json:"featured_articles"`
	BreakingNews     []ArticleResponse  `json:"breaking_news"`
	Categories       []CategoryResponse `json:"categories"`
	PopularTags      []TagResponse      `json:"popular_tags"`
}

type GlobalContextResponse struct {
	NavCategories []CategoryResponse `json:"nav_categories"`
	BreakingNews  []ArticleResponse  `json:"breaking_news"`
}

func HomepageFromUsecase(d *homepage.HomepageData) HomepageResponse {
	return HomepageResponse{
		FeaturedArticles: ArticlesFromEntities(d.FeaturedArticles),
		BreakingNews:     ArticlesFromEntities(d.BreakingNews),
		Categories:       CategoriesFromEntities(d.Categories),
		PopularTags:      TagsFromEntities(d.PopularTags),
	}
}

func GlobalContextFromUsecase(d *homepage.GlobalContextData) GlobalContextResponse {
	return GlobalContextResponse{
		NavCategories: CategoriesFromEntities(d.NavCategories),
		BreakingNews:  ArticlesFromEntities(d.BreakingNews),
	}
}
