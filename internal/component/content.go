package component

// ImagePath is the single asset every banner image points at.
const ImagePath = "/images/ahc-products.png"

// PlaceholderHref marks call-to-action targets that have no destination yet.
const PlaceholderHref = "#"

type Link struct {
	Label string
	Href  string
}

type Image struct {
	Src string
	Alt string
}

type Bubble struct {
	Image    Image
	Caption  string
	Position string
}

// Content is the literal banner copy. Arrays keep it a plain value, so
// every caller gets its own copy.
type Content struct {
	Headline    [2]string
	Subheadline string
	Actions     [2]Link
	Featured    Image
	Bubbles     [2]Bubble
	Shapes      [2]string
}

var content = Content{
	Headline:    [2]string{"DA SÁNG CHÀO HÈ", "DEAL SANG QUÀ XỊN"},
	Subheadline: "ƯU ĐÃI LÊN ĐẾN 80%",
	Actions: [2]Link{
		{Label: "QUÀ TẶNG FULLSIZE", Href: PlaceholderHref},
		{Label: "MUA 1 TẶNG 6", Href: PlaceholderHref},
	},
	Featured: Image{Src: ImagePath, Alt: "Featured AHC Products"},
	Bubbles: [2]Bubble{
		{
			Image:    Image{Src: ImagePath, Alt: "AHC Products"},
			Caption:  "QUÀ TẶNG FULLSIZE",
			Position: "-left-4 top-6",
		},
		{
			Image:    Image{Src: ImagePath, Alt: "Gift Set"},
			Caption:  "MUA 1 TẶNG 6",
			Position: "-right-4 bottom-6",
		},
	},
	Shapes: [2]string{
		"top: -6rem; right: -6rem;",
		"bottom: -6rem; left: -6rem;",
	},
}

func Default() Content {
	return content
}

// Images lists every image in render order: the featured one, then the bubbles.
func (c Content) Images() []Image {
	return []Image{c.Featured, c.Bubbles[0].Image, c.Bubbles[1].Image}
}
