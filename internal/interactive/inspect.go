package interactive

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// DocumentInfo summarizes a recovered HTML document for diagnostics.
type DocumentInfo struct {
	Title       string // Text of the <title> element, empty if absent
	HasCanvas   bool   // Whether a <canvas> element is present
	HasFabric   bool   // Whether the Fabric.js CDN is referenced
	HasAnime    bool   // Whether the Anime.js CDN is referenced
	ScriptCount int    // Number of <script> elements
}

// Inspect parses a recovered document and reports its structural features.
// The extractor deliberately passes through non-HTML output, so a parse
// failure here is expected for degraded artifacts and is not fatal.
func Inspect(doc string) (DocumentInfo, error) {
	parsed, err := goquery.NewDocumentFromReader(strings.NewReader(doc))
	if err != nil {
		return DocumentInfo{}, err
	}

	info := DocumentInfo{
		Title:     strings.TrimSpace(parsed.Find("title").First().Text()),
		HasCanvas: parsed.Find("canvas").Length() > 0,
	}

	parsed.Find("script").Each(func(_ int, s *goquery.Selection) {
		info.ScriptCount++
		src, _ := s.Attr("src")
		switch src {
		case FabricCDN:
			info.HasFabric = true
		case AnimeCDN:
			info.HasAnime = true
		}
	})

	return info, nil
}
