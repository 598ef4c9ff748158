package common

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"
)

var (
	CtxKeys struct {
		UID         string
		Email       string
		Name        string
		Claims      string
		SessionUser string
	}

	ProjectID string

	GAEService string

	GAEVersion string

	Env string

	// Production flag indicating if app is running the production backend
	Production bool

	// IsLocalhost flag indicating if app is running on localhost
	IsLocalhost bool
)

const (
	productionProject = "kindfood-erp"

	TestProjectID = "kindfood-erp-dev"

	// Firestore collections
	BOMTablesCollection       = "bom_tables"
	SharedMaterialsCollection = "shared_materials"
	CategoriesCollection      = "categorys"
	AnalysesCollection        = "excelAnalysis"
	PricingHistoryCollection  = "pricingHistory"
	UserStateCollection       = "user_state"
	HistorySubCollection      = "history"
)

// Front end routes the API redirects to.
const (
	RouteHome              = "/"
	RouteSignIn            = "/signin"
	RouteBOMTables         = "/bom-table"
	RouteNewBOMTable       = "/new-bomtable"
	RouteSharedMaterials   = "/shared-material"
	RouteNewSharedMaterial = "/new-shared-material"
	RouteExcelAnalysis     = "/excel-analysis"
	RouteDealerPricing     = "/dealer-pricing"
)

// GetEnv returns the environment variable value or the fallback when it is not set.
func GetEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}

	return fallback
}

func initEnvVariables() {
	ProjectID = GetEnv("GOOGLE_CLOUD_PROJECT", TestProjectID)

	IsLocalhost = gin.Mode() != gin.ReleaseMode
	GAEService = GetEnv("GAE_SERVICE", "erp-api")
	GAEVersion = GetEnv("GAE_VERSION", "localhost")

	if value := os.Getenv("FIRESTORE_EMULATOR_HOST"); value != "" {
		log.Printf("Using Firestore Emulator: %s", value)
	}

	if ProjectID == productionProject && !IsLocalhost {
		Env = "production"
		Production = true

		return
	}

	Env = "development"
	Production = false
}

func init() {
	initEnvVariables()

	CtxKeys.UID = "uid"
	CtxKeys.Email = "email"
	CtxKeys.Name = "name"
	CtxKeys.Claims = "claims"
	CtxKeys.SessionUser = "sessionUser"
}
