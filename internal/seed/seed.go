// Package seed supplies the static catalogs the store starts from: monitored
// sources, initial content placeholders, events, podcasts, newsletters,
// market metrics, partners, and industry statistics.
package seed

import (
	"time"

	"github.com/rahmasleam/Neux-Mena-V5/internal/model"
)

func date(offset int) string {
	return time.Now().AddDate(0, 0, offset).Format("2006-01-02")
}

// Resources is the curated catalog of the 14 monitored publishers.
func Resources() []model.ResourceItem {
	return []model.ResourceItem{
		{ID: "r_pb", Name: "PitchBook", URL: "https://pitchbook.com/news", Type: "Startup", Description: "M&A, PE and VC data"},
		{ID: "r_cb", Name: "Crunchbase News", URL: "https://news.crunchbase.com", Type: "Startup", Description: "Business & Startup Journalism"},
		{ID: "r_cbi", Name: "CB Insights", URL: "https://www.cbinsights.com/research", Type: "Startup", Description: "Tech Market Intelligence"},
		{ID: "r_dne", Name: "Daily News Egypt", URL: "https://dailynewsegypt.com/business", Type: "News", Description: "Egypt Daily Business News"},
		{ID: "r_almal", Name: "Al Mal News", URL: "https://almalnews.com", Type: "News", Description: "Egypt Financial News (Arabic)"},
		{ID: "r_wamda", Name: "Wamda", URL: "https://www.wamda.com", Type: "Startup", Description: "MENA Entrepreneurship Ecosystem"},
		{ID: "r_mena", Name: "MENAbytes", URL: "https://www.menabytes.com", Type: "Startup", Description: "Middle East Tech & Startups"},
		{ID: "r_flat6", Name: "Flat6Labs", URL: "https://flat6labs.com/news", Type: "Startup", Description: "MENA Accelerator News"},
		{ID: "r_tc", Name: "TechCrunch", URL: "https://techcrunch.com", Type: "News", Description: "Global Technology News"},
		{ID: "r_bi", Name: "Business Insider", URL: "https://www.businessinsider.com/tech", Type: "News", Description: "Business & Tech Insider"},
		{ID: "r_forbes", Name: "Forbes Entrepreneurs", URL: "https://www.forbes.com/entrepreneurs", Type: "News", Description: "Entrepreneurship & Business"},
		{ID: "r_verge", Name: "The Verge", URL: "https://www.theverge.com/tech", Type: "News", Description: "Mainstream Tech & Science"},
		{ID: "r_wired", Name: "Wired", URL: "https://www.wired.com/business", Type: "News", Description: "Impact of Technology"},
		{ID: "r_fast", Name: "Fast Company", URL: "https://www.fastcompany.com/technology", Type: "News", Description: "Innovation & Business Design"},
	}
}

// LatestNews holds placeholders shown before the first sync completes.
func LatestNews() []model.NewsItem {
	return []model.NewsItem{
		{
			ID:          "n_tc_init",
			Title:       "TechCrunch: Latest AI Developments (Live Feed)",
			Description: "Syncing with TechCrunch to bring you the latest on Artificial Intelligence and startups.",
			Source:      "TechCrunch",
			URL:         "https://techcrunch.com/category/artificial-intelligence/",
			Date:        date(0),
			Region:      model.RegionGlobal,
			Category:    "Tech",
			Sector:      "AI",
			ImageURL:    "https://picsum.photos/800/400?random=1",
			Tags:        []string{"AI", "Live"},
		},
		{
			ID:          "n_almal_init",
			Title:       "Al Mal News: EGX Market Watch",
			TitleAr:     "جريدة المال: متابعة سوق المال المصري",
			Description: "Real-time updates from the Egyptian Exchange and financial sectors.",
			Source:      "Al Mal News",
			URL:         "https://almalnews.com/category/stock-market/",
			Date:        date(0),
			Region:      model.RegionEgypt,
			Category:    "Economy",
			Sector:      "Economy",
			ImageURL:    "https://picsum.photos/800/400?random=2",
			Tags:        []string{"EGX", "Finance"},
		},
	}
}

func StartupNews() []model.NewsItem {
	return []model.NewsItem{
		{
			ID:          "s_cb_init",
			Title:       "Crunchbase: Daily Funding Report",
			Description: "Tracking the latest venture capital deals and startup funding rounds globally.",
			Source:      "Crunchbase News",
			URL:         "https://news.crunchbase.com/startups/funding/",
			Date:        date(0),
			Region:      model.RegionGlobal,
			Category:    "Startup",
			Sector:      "General",
			ImageURL:    "https://picsum.photos/800/400?random=3",
			Tags:        []string{"VC", "Funding"},
		},
		{
			ID:          "s_wamda_init",
			Title:       "Wamda: MENA Ecosystem Updates",
			Description: "Latest stories from founders and investors across the Middle East.",
			Source:      "Wamda",
			URL:         "https://www.wamda.com/news",
			Date:        date(0),
			Region:      model.RegionMENA,
			Category:    "Startup",
			Sector:      "General",
			ImageURL:    "https://picsum.photos/800/400?random=4",
			Tags:        []string{"MENA", "Startups"},
		},
	}
}

func Events() []model.EventItem {
	return []model.EventItem{
		{
			ID:               "e1",
			Title:            "RiseUp Summit 2024",
			Description:      "The largest entrepreneurship event in the Middle East taking place at the Grand Egyptian Museum.",
			Location:         "Giza, Egypt",
			StartDate:        date(30),
			EndDate:          date(32),
			RegistrationLink: "https://riseupsummit.com",
			IsVirtual:        false,
			Region:           model.RegionEgypt,
			Source:           "RiseUp",
			URL:              "https://riseupsummit.com",
			ImageURL:         "https://picsum.photos/800/400?random=8",
			Date:             date(30),
			Type:             "Conference",
		},
		{
			ID:               "e2",
			Title:            "Web Summit Lisbon",
			Description:      "Where the future goes to be born. The premier global tech conference.",
			Location:         "Lisbon, Portugal",
			StartDate:        date(60),
			EndDate:          date(63),
			RegistrationLink: "https://websummit.com",
			IsVirtual:        false,
			Region:           model.RegionGlobal,
			Source:           "Web Summit",
			URL:              "https://websummit.com",
			ImageURL:         "https://picsum.photos/800/400?random=9",
			Date:             date(60),
			Type:             "Conference",
		},
	}
}

func Podcasts() []model.PodcastItem {
	return []model.PodcastItem{
		{
			ID:                 "p_req_1",
			Title:              "Business Made Easy",
			Description:        "Strategies for easy business growth and simplified concepts for entrepreneurs. Hosted by Amy Porterfield.",
			Duration:           "40 min",
			Region:             model.RegionGlobal,
			Source:             "Spotify",
			URL:                "https://open.spotify.com/show/3ULANVC0n6XfXDYqn9QY3Q",
			ChannelURL:         "https://open.spotify.com/show/3ULANVC0n6XfXDYqn9QY3Q",
			SpotifyURL:         "https://open.spotify.com/show/3ULANVC0n6XfXDYqn9QY3Q",
			AppleURL:           "https://podcasts.apple.com/us/podcast/bme-podcast-business-made-easy/id1445501936",
			Date:               date(-1),
			ImageURL:           "https://picsum.photos/800/400?random=100",
			SummaryPoints:      []string{"Strategy", "Marketing", "Growth"},
			Language:           "en",
			Topic:              "Business",
			LatestEpisodeTitle: "How to Scale Your Business Without Burning Out",
			RecentEpisodes: []model.Episode{
				{Title: "Email Marketing 101", Date: date(-5), Duration: "35 min", URL: "https://open.spotify.com/show/3ULANVC0n6XfXDYqn9QY3Q"},
				{Title: "Course Creation Secrets", Date: date(-12), Duration: "42 min", URL: "https://open.spotify.com/show/3ULANVC0n6XfXDYqn9QY3Q"},
			},
		},
		{
			ID:                 "p_req_2",
			Title:              "7aki Business - حكي بيزنس",
			TitleAr:            "حكي بيزنس",
			Description:        "In-depth conversations with business leaders in the MENA region about challenges and opportunities.",
			Duration:           "50 min",
			Region:             model.RegionMENA,
			Source:             "YouTube",
			URL:                "https://www.youtube.com/@7akiBusiness",
			ChannelURL:         "https://www.youtube.com/@7akiBusiness",
			YoutubeURL:         "https://www.youtube.com/@7akiBusiness",
			SpotifyURL:         "https://open.spotify.com/show/3fdkR33kideFoyunaAtylt",
			AnghamiURL:         "https://play.anghami.com/podcast/1038691248",
			Date:               date(-2),
			ImageURL:           "https://picsum.photos/800/400?random=101",
			SummaryPoints:      []string{"MENA Market", "Startup Stories", "Scale-ups"},
			Language:           "ar",
			Topic:              "Entrepreneurship",
			LatestEpisodeTitle: "The Future of E-commerce in Saudi Arabia",
			RecentEpisodes: []model.Episode{
				{Title: "Interview with Careem Co-founder", Date: date(-7), Duration: "55 min", URL: "https://www.youtube.com/watch?v=example1"},
				{Title: "Fintech Regulations in Egypt", Date: date(-14), Duration: "48 min", URL: "https://www.youtube.com/watch?v=example2"},
			},
		},
		{
			ID:                 "p_req_3",
			Title:              "This Week in Startups",
			Description:        "Jason Calacanis and Molly Wood cover the latest in tech, entrepreneurship, and VC news.",
			Duration:           "60 min",
			Region:             model.RegionGlobal,
			Source:             "YouTube",
			URL:                "https://www.youtube.com/c/thisweekin",
			ChannelURL:         "https://www.youtube.com/c/thisweekin",
			YoutubeURL:         "https://www.youtube.com/c/thisweekin",
			SpotifyURL:         "https://open.spotify.com/show/6ULQ0ewYf5zmsDgBchlkr9",
			Date:               date(0),
			ImageURL:           "https://picsum.photos/800/400?random=102",
			SummaryPoints:      []string{"Silicon Valley", "Investment", "Tech News", "AI"},
			Language:           "en",
			Topic:              "Startup",
			LatestEpisodeTitle: "E1002: AI Regulation & The Next Big Thing",
			RecentEpisodes: []model.Episode{
				{Title: "E1001: Interview with Sam Altman", Date: date(-2), Duration: "70 min", URL: "https://www.youtube.com/c/thisweekin"},
				{Title: "E1000: 10 Years of TWiS", Date: date(-5), Duration: "90 min", URL: "https://www.youtube.com/c/thisweekin"},
			},
		},
		{
			ID:                 "p_req_4",
			Title:              "The Diary Of A CEO",
			Description:        "Unfiltered conversations with the most influential people in the world, hosted by Steven Bartlett.",
			Duration:           "75 min",
			Region:             model.RegionGlobal,
			Source:             "YouTube",
			URL:                "https://www.youtube.com/@TheDiaryOfACEO",
			ChannelURL:         "https://www.youtube.com/@TheDiaryOfACEO",
			YoutubeURL:         "https://www.youtube.com/@TheDiaryOfACEO",
			SpotifyURL:         "https://open.spotify.com/show/7iQXmUT7XGuZSzAMjoNWlX",
			Date:               date(-3),
			ImageURL:           "https://picsum.photos/800/400?random=103",
			SummaryPoints:      []string{"Leadership", "Mental Health", "Success", "Business"},
			Language:           "en",
			Topic:              "Business",
			LatestEpisodeTitle: "How to Master Your Mind and Emotions",
			RecentEpisodes: []model.Episode{
				{Title: "The Science of Sleep", Date: date(-6), Duration: "80 min", URL: "https://www.youtube.com/@TheDiaryOfACEO"},
				{Title: "Billionaire Mindset", Date: date(-10), Duration: "65 min", URL: "https://www.youtube.com/@TheDiaryOfACEO"},
			},
		},
		{
			ID:                 "p_req_5",
			Title:              "Startup Sync Podcast",
			Description:        "Synchronizing you with the latest startup ecosystem pulses and founder stories.",
			Duration:           "35 min",
			Region:             model.RegionGlobal,
			Source:             "YouTube",
			URL:                "https://www.youtube.com/@StartupSyncPodcast",
			ChannelURL:         "https://www.youtube.com/@StartupSyncPodcast",
			YoutubeURL:         "https://www.youtube.com/@StartupSyncPodcast",
			Date:               date(-4),
			ImageURL:           "https://picsum.photos/800/400?random=104",
			SummaryPoints:      []string{"Ecosystem", "Founders", "Sync"},
			Language:           "en",
			Topic:              "Startup",
			LatestEpisodeTitle: "Navigating the Funding Winter",
			RecentEpisodes: []model.Episode{
				{Title: "Bootstrapping 101", Date: date(-8), Duration: "30 min", URL: "https://www.youtube.com/@StartupSyncPodcast"},
			},
		},
	}
}

func Newsletters() []model.NewsletterItem {
	return []model.NewsletterItem{
		{
			ID:            "nl_pt_1",
			Title:         "Future PropTech",
			Description:   "Weekly digest on the future of built world technology.",
			Source:        "Future PropTech",
			URL:           "https://futureproptech.com",
			Date:          date(0),
			Region:        model.RegionGlobal,
			ImageURL:      "https://picsum.photos/800/400?random=501",
			Frequency:     "Weekly",
			SubscribeLink: "https://futureproptech.com/subscribe",
		},
		{
			ID:            "nl1",
			Title:         "TLDR Tech",
			Description:   "Keep up with tech in 5 minutes. The most important stories in tech, science, and coding.",
			Source:        "TLDR",
			URL:           "https://tldr.tech",
			Date:          date(0),
			Region:        model.RegionGlobal,
			ImageURL:      "https://picsum.photos/800/400?random=28",
			Frequency:     "Daily",
			SubscribeLink: "https://tldr.tech",
		},
		{
			ID:            "nl2",
			Title:         "Enterprise Egypt",
			Description:   "The essential morning read for business and finance in Egypt.",
			Source:        "Enterprise",
			URL:           "https://enterprise.press",
			Date:          date(0),
			Region:        model.RegionEgypt,
			ImageURL:      "https://picsum.photos/800/400?random=29",
			Frequency:     "Daily",
			SubscribeLink: "https://enterprise.press/subscribe",
		},
	}
}

// MarketMetrics combines the index, crypto and currency groups into one
// collection; Type distinguishes them.
func MarketMetrics() []model.MarketMetric {
	return []model.MarketMetric{
		{Name: "EGX 30", Value: 28500.45, Change: 1.2, Trend: "up", Currency: "pts", Type: "Index"},
		{Name: "NASDAQ", Value: 16340.20, Change: 0.8, Trend: "up", Currency: "USD", Type: "Index"},
		{Name: "S&P 500", Value: 5200.10, Change: 0.3, Trend: "up", Currency: "USD", Type: "Index"},
		{Name: "Tadawul", Value: 12500.00, Change: -0.2, Trend: "down", Currency: "SAR", Type: "Index"},
		{Name: "Bitcoin", Value: 64200.00, Change: -1.5, Trend: "down", Currency: "USD", Type: "Crypto"},
		{Name: "Ethereum", Value: 3200.50, Change: 0.5, Trend: "up", Currency: "USD", Type: "Crypto"},
		{Name: "Solana", Value: 145.20, Change: 2.1, Trend: "up", Currency: "USD", Type: "Crypto"},
		{Name: "USD/EGP", Value: 47.85, Change: -0.1, Trend: "neutral", Currency: "EGP", Type: "Currency"},
		{Name: "EUR/EGP", Value: 51.20, Change: 0.2, Trend: "up", Currency: "EGP", Type: "Currency"},
		{Name: "SAR/EGP", Value: 12.75, Change: 0.0, Trend: "neutral", Currency: "EGP", Type: "Currency"},
	}
}

func Partners() []model.PartnerItem {
	return []model.PartnerItem{
		{
			ID:           "pt1",
			Name:         "ITIDA",
			Logo:         "https://picsum.photos/200/200?random=20",
			Website:      "https://itida.gov.eg",
			Type:         "Egypt",
			Description:  "Information Technology Industry Development Agency",
			ContactEmail: "info@itida.gov.eg",
			Services:     []string{"Grants", "Training", "Export Support"},
		},
		{
			ID:           "pt3",
			Name:         "Flat6Labs",
			Logo:         "https://picsum.photos/200/200?random=22",
			Website:      "https://flat6labs.com",
			Type:         "Egypt",
			Description:  "MENA's leading seed and early stage venture capital firm.",
			ContactEmail: "cairo@flat6labs.com",
			Services:     []string{"Investment", "Mentorship", "Office Space"},
		},
	}
}

func Industry() model.IndustryData {
	return model.IndustryData{
		Sectors: []model.SectorStat{
			{Name: "AI & Machine Learning", Growth: 24.5, Companies: 120, Investment: 850, Color: "#6366f1", Source: "Gartner", URL: "https://www.gartner.com/en/industries/high-tech", LastUpdated: "2025-10-15"},
			{Name: "Fintech", Growth: 18.2, Companies: 350, Investment: 1200, Color: "#10b981", Source: "CB Insights", URL: "https://www.cbinsights.com/research/report/fintech-trends-2025/", LastUpdated: "2025-11-01"},
			{Name: "Deep Tech", Growth: 31.0, Companies: 45, Investment: 400, Color: "#ec4899", Source: "Wamda", URL: "https://wamda.com", LastUpdated: "2025-11-10"},
			{Name: "Proptech", Growth: 12.4, Companies: 85, Investment: 250, Color: "#f59e0b", Source: "Magnitt", URL: "https://magnitt.com", LastUpdated: "2025-09-20"},
			{Name: "E-commerce", Growth: 8.5, Companies: 500, Investment: 900, Color: "#3b82f6", Source: "eMarketer", URL: "https://www.emarketer.com", LastUpdated: "2025-11-05"},
		},
		MarketSizing: []model.SizingSlice{
			{Name: "TAM", Value: 50, Color: "#e2e8f0", Label: "$50B Global Potential", Source: "Statista", URL: "https://www.statista.com"},
			{Name: "SAM", Value: 20, Color: "#94a3b8", Label: "$20B MENA Market", Source: "Statista", URL: "https://www.statista.com"},
			{Name: "SOM", Value: 5, Color: "#0ea5e9", Label: "$5B Target Share", Source: "Statista", URL: "https://www.statista.com"},
		},
		GrowthForecast: []model.ForecastPoint{
			{Year: "2023", Value: 1.2},
			{Year: "2024", Value: 1.5},
			{Year: "2025", Value: 2.1},
			{Year: "2026", Value: 2.8},
			{Year: "2027", Value: 3.9},
		},
		Competitors: []model.Competitor{
			{Name: "Fawry", Share: 35, Type: "Leader", Strength: "Distribution Network", Source: "EGX Reports", URL: "https://www.egx.com.eg"},
			{Name: "Paymob", Share: 20, Type: "Challenger", Strength: "Tech Stack", Source: "Crunchbase", URL: "https://www.crunchbase.com"},
			{Name: "InstaPay", Share: 15, Type: "Disruptor", Strength: "UX/Speed", Source: "CBE", URL: "https://www.cbe.org.eg"},
			{Name: "Others", Share: 30, Type: "Fragmented", Strength: "Niche Markets", Source: "Market Research", URL: "https://example.com"},
		},
	}
}
