package core

// Client routes. The API never renders them, it only tells the client where to go next.
const (
	RouteLogin          = "/"
	RouteDashboard      = "/dashboard"
	RouteAddAchievement = "/add-achievement"
	RoutePortfolio      = "/portfolio"
	RouteProfile        = "/profile"
	RouteFaculty        = "/faculty"
	RouteAdmin          = "/admin"
)
