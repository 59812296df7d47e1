package campaign_controller

import (
	"time"

	"github.com/jarradburge/optivana-vanthex-monorepo/logger"
	"github.com/jarradburge/optivana-vanthex-monorepo/repository"
	"github.com/jarradburge/optivana-vanthex-monorepo/services"
)

const (
	defaultVariantCount = 3
	maxVariantCount     = 10
	maxCreativeSize     = 100 << 20
)

type Controller struct {
	campaigns repository.CampaignRepository
	stores    repository.StoreRepository
	products  repository.ProductRepository
	engine    services.VanthexEngine
	uploader  services.CreativeUploader
	log       *logger.Logger
	timeout   time.Duration
}

type Deps struct {
	Campaigns repository.CampaignRepository
	Stores    repository.StoreRepository
	Products  repository.ProductRepository
	Engine    services.VanthexEngine
	// A nil Uploader rejects every upload with services.ErrUploadsDisabled.
	Uploader services.CreativeUploader
	Log      *logger.Logger
	Timeout  time.Duration
}

func New(d Deps) *Controller {
	if d.Uploader == nil {
		d.Uploader = services.DisabledUploader{}
	}
	return &Controller{
		campaigns: d.Campaigns,
		stores:    d.Stores,
		products:  d.Products,
		engine:    d.Engine,
		uploader:  d.Uploader,
		log:       d.Log.With("controller", "campaign"),
		timeout:   d.Timeout,
	}
}
