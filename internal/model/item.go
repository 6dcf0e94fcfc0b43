package model

const (
	RegionGlobal = "Global"
	RegionEgypt  = "Egypt"
	RegionMENA   = "MENA"
)

// Category selectors used by the store and the refresh pipeline.
const (
	CategoryLatest      = "latest"
	CategoryStartup     = "startup"
	CategoryEvents      = "events"
	CategoryPodcasts    = "podcasts"
	CategoryNewsletters = "newsletters"
	CategoryMarket      = "market"
	CategoryPartners    = "partners"
	CategoryResources   = "resources"
)

type NewsItem struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	TitleAr     string   `json:"titleAr,omitempty"`
	Description string   `json:"description"`
	Source      string   `json:"source"`
	URL         string   `json:"url"`
	Date        string   `json:"date"`
	Region      string   `json:"region"`
	Category    string   `json:"category"`
	Sector      string   `json:"sector"`
	ImageURL    string   `json:"imageUrl"`
	Tags        []string `json:"tags"`
}

// ResourceItem is a monitored external publisher. Type is "News" or "Startup".
type ResourceItem struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	URL         string `json:"url"`
	Type        string `json:"type"`
	Description string `json:"description"`
}

type EventItem struct {
	ID               string `json:"id"`
	Title            string `json:"title"`
	Description      string `json:"description"`
	Location         string `json:"location"`
	StartDate        string `json:"startDate"`
	EndDate          string `json:"endDate"`
	RegistrationLink string `json:"registrationLink"`
	IsVirtual        bool   `json:"isVirtual"`
	Region           string `json:"region"`
	Source           string `json:"source"`
	URL              string `json:"url"`
	ImageURL         string `json:"imageUrl"`
	Date             string `json:"date"`
	Type             string `json:"type"`
}

type Episode struct {
	Title    string `json:"title"`
	Date     string `json:"date"`
	Duration string `json:"duration"`
	URL      string `json:"url"`
}

type PodcastItem struct {
	ID                 string    `json:"id"`
	Title              string    `json:"title"`
	TitleAr            string    `json:"titleAr,omitempty"`
	Description        string    `json:"description"`
	Duration           string    `json:"duration"`
	Region             string    `json:"region"`
	Source             string    `json:"source"`
	URL                string    `json:"url"`
	ChannelURL         string    `json:"channelUrl,omitempty"`
	YoutubeURL         string    `json:"youtubeUrl,omitempty"`
	SpotifyURL         string    `json:"spotifyUrl,omitempty"`
	AppleURL           string    `json:"appleUrl,omitempty"`
	AnghamiURL         string    `json:"anghamiUrl,omitempty"`
	Date               string    `json:"date"`
	ImageURL           string    `json:"imageUrl"`
	SummaryPoints      []string  `json:"summaryPoints"`
	Language           string    `json:"language"`
	Topic              string    `json:"topic"`
	LatestEpisodeTitle string    `json:"latestEpisodeTitle,omitempty"`
	RecentEpisodes     []Episode `json:"recentEpisodes,omitempty"`
}

type NewsletterItem struct {
	ID            string `json:"id"`
	Title         string `json:"title"`
	Description   string `json:"description"`
	Source        string `json:"source"`
	URL           string `json:"url"`
	Date          string `json:"date"`
	Region        string `json:"region"`
	ImageURL      string `json:"imageUrl"`
	Frequency     string `json:"frequency"`
	SubscribeLink string `json:"subscribeLink"`
}

// MarketMetric has no identity of its own; Name is the key.
type MarketMetric struct {
	Name     string  `json:"name"`
	Value    float64 `json:"value"`
	Change   float64 `json:"change"`
	Trend    string  `json:"trend"`
	Currency string  `json:"currency"`
	Type     string  `json:"type"`
}

type PartnerItem struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Logo         string   `json:"logo"`
	Website      string   `json:"website"`
	Type         string   `json:"type"`
	Description  string   `json:"description"`
	ContactEmail string   `json:"contactEmail"`
	Services     []string `json:"services"`
}

type SectorStat struct {
	Name        string  `json:"name"`
	Growth      float64 `json:"growth"`
	Companies   int     `json:"companies"`
	Investment  float64 `json:"investment"`
	Color       string  `json:"color"`
	Source      string  `json:"source"`
	URL         string  `json:"url"`
	LastUpdated string  `json:"lastUpdated"`
}

type SizingSlice struct {
	Name   string  `json:"name"`
	Value  float64 `json:"value"`
	Color  string  `json:"color"`
	Label  string  `json:"label"`
	Source string  `json:"source"`
	URL    string  `json:"url"`
}

type ForecastPoint struct {
	Year  string  `json:"year"`
	Value float64 `json:"value"`
}

type Competitor struct {
	Name     string  `json:"name"`
	Share    float64 `json:"share"`
	Type     string  `json:"type"`
	Strength string  `json:"strength"`
	Source   string  `json:"source"`
	URL      string  `json:"url"`
}

type IndustryData struct {
	Sectors        []SectorStat    `json:"sectors"`
	MarketSizing   []SizingSlice   `json:"marketSizing"`
	GrowthForecast []ForecastPoint `json:"growthForecast"`
	Competitors    []Competitor    `json:"competitors"`
}
