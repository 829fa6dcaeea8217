package handlers

import (
	intconfig "cartrans-backend/internal/config"
	"cartrans-backend/internal/http/middleware"
	"cartrans-backend/internal/repositories"
	"cartrans-backend/internal/services"

	"github.com/gin-gonic/gin"
)

var (
	env     intconfig.Env
	pricing intconfig.Pricing
)

// Configure stores the runtime configuration the handlers build their
// services from. Called once from the router.
func Configure(e intconfig.Env, p intconfig.Pricing) {
	env = e
	pricing = p
}

func distanceResolver(c *gin.Context) services.DistanceResolver {
	return services.DistanceResolver{
		Cfg:       pricing,
		APIKey:    env.DistanceAPIKey,
		APIURL:    env.DistanceAPIURL,
		RequestID: middleware.GetRequestID(c),
	}
}

func priceCalculator(c *gin.Context) services.PriceCalculator {
	return services.PriceCalculator{
		Cfg:           pricing,
		Distance:      distanceResolver(c).Resolve,
		TariffByMonth: repositories.TariffRepository{DB: intconfig.DB}.GetByMonth,
	}
}

func orderService(c *gin.Context) services.OrderService {
	return services.OrderService{
		OrderRepo: repositories.OrderRepository{DB: intconfig.DB},
		CityRepo:  repositories.CityRepository{DB: intconfig.DB},
		UserRepo:  repositories.UserRepository{DB: intconfig.DB},
		Calc:      priceCalculator(c),
		RequestID: middleware.GetRequestID(c),
	}
}

func cityService(c *gin.Context) services.CityService {
	return services.CityService{
		CityRepo:  repositories.CityRepository{DB: intconfig.DB},
		OrderRepo: repositories.OrderRepository{DB: intconfig.DB},
		RequestID: middleware.GetRequestID(c),
	}
}

func tariffService(c *gin.Context) services.TariffService {
	return services.TariffService{
		TariffRepo: repositories.TariffRepository{DB: intconfig.DB},
		RequestID:  middleware.GetRequestID(c),
	}
}

func userService(c *gin.Context) services.UserService {
	return services.UserService{
		UserRepo:  repositories.UserRepository{DB: intconfig.DB},
		OrderRepo: repositories.OrderRepository{DB: intconfig.DB},
		RequestID: middleware.GetRequestID(c),
	}
}

func paymentService(c *gin.Context) services.PaymentService {
	return services.PaymentService{
		Orders:    orderService(c),
		RequestID: middleware.GetRequestID(c),
	}
}

func docsService(c *gin.Context) services.DocsService {
	return services.DocsService{
		OrderRepo: repositories.OrderRepository{DB: intconfig.DB},
		RequestID: middleware.GetRequestID(c),
	}
}
