// Package interactive turns text content into a self-contained interactive
// HTML concept map via a single generation call, then recovers the document
// from the model's possibly-fenced output.
package interactive

import (
	"fmt"
	"strings"

	"fluidcontent/internal/core"
)

// External script URLs the generated document may reference. Everything
// else must be inlined.
const (
	FabricCDN = "https://cdnjs.cloudflare.com/ajax/libs/fabric.js/5.3.0/fabric.min.js"
	AnimeCDN  = "https://cdnjs.cloudflare.com/ajax/libs/animejs/3.2.1/anime.min.js"
)

// BuildConceptMapPrompt composes the instruction for generating a single
// self-contained interactive HTML concept map from a content item. Pure:
// same input, same output string.
func BuildConceptMapPrompt(content core.ContentInput) string {
	var sb strings.Builder

	sb.WriteString("You are an expert front-end developer and creative technologist, specialized in building highly interactive and immersive 2D single-page web experiences. ")
	sb.WriteString("Your goal is to transform concepts and data (provided as text) into engaging interactive concept maps. ")
	sb.WriteString("These maps must be the heart of the user experience, enabling intuitive navigation and on-demand discovery of information. ")
	sb.WriteString("About 90% of the user experience should be driven by direct interaction with the nodes and relations of the concept map. ")
	sb.WriteString("Essential: before generating any code, analyze and simplify the content of the original text. ")
	sb.WriteString("Extract the key concepts (which become the map's nodes) and their relations (which become the links between nodes). ")
	sb.WriteString("The main purpose of the interactive concept map is to help the user understand the content better.\n\n")

	sb.WriteString("TASK:\n")
	sb.WriteString("Content to transform:\n")
	fmt.Fprintf(&sb, "Title: %q\n", content.Title)
	if content.Description != "" {
		fmt.Fprintf(&sb, "Short description: %q\n", content.Description)
	}
	sb.WriteString("Main text:\n")
	sb.WriteString(content.OriginalText)
	sb.WriteString("\n\n")

	sb.WriteString("You must generate a single self-contained HTML file (.html) that includes the following:\n")
	sb.WriteString("HTML STRUCTURE: a well-formed HTML5 document; the input title in the <title> tag and as an <h1> (which may be an overlay or a minimal header above the map); the input description in the <meta name=\"description\"> tag and possibly as a short introductory text; a <canvas> element managed by Fabric.js to draw the concept map. ")
	sb.WriteString("The information in the main text must be analyzed to extract concepts (nodes) and relations (links); the textual information associated with each concept must be simplified and shown dynamically when the user interacts with the corresponding node (e.g. in a popup or side panel).\n")
	sb.WriteString("CSS STYLING: all CSS must be included inline in the document; the styling must be modern, clear and engaging, supporting the visual nature of a concept map; styling for nodes, links, labels and interactive UI elements (info panels appearing on click, tooltips) is crucial; the page must be responsive, with the concept map adapting well and staying navigable.\n")
	fmt.Fprintf(&sb, "JAVASCRIPT FUNCTIONALITY: all JavaScript must be included inline (except the library CDNs). The libraries to include via CDN are Fabric.js (<script src=%q></script>) and Anime.js (<script src=%q></script>).\n", FabricCDN, AnimeCDN)
	sb.WriteString("The concept map rendering uses Fabric.js to draw on the canvas. Nodes are Fabric objects (fabric.Rect, fabric.Circle, fabric.Text, fabric.Group) representing concepts, each ideally with a short, clear text label. Links are drawn as lines or curves (fabric.Line, fabric.Path) representing the relations between nodes, optionally with arrows or labels indicating direction or nature of the relation. The layout arranges nodes and links clearly and logically.\n")
	sb.WriteString("Core interactivity with Fabric.js includes: node selection by click; display of simplified detailed information in a panel/popup when a node is clicked; hover effects on nodes and/or links for visual feedback; optionally (recommended for large maps) canvas zoom and pan.\n")
	sb.WriteString("Engaging animations with Anime.js make the map dynamic: animating the appearance/disappearance of info panels; animating nodes and links entering the scene; smooth transitions when focusing a node; animated highlighting of nodes and links; any other useful animation.\n")
	sb.WriteString("SELF-CONTAINED: the generated HTML file must not require any external CSS or JS file (except the specified CDNs).\n")
	sb.WriteString("CREATIVE GUIDELINES: clarity and understanding (the map must make concepts and relations immediately understandable); visual and interactive engagement (animations and polished design for pleasant exploration); interaction is central (the user discovers information through direct interaction); concise information on demand (text in popups/panels is simplified); performance (smooth animations and interactions); visual coherence (consistent graphic style).\n")
	sb.WriteString("OUTPUT FORMAT: provide ONLY the complete HTML code as output. Do not include any explanatory text before or after the code block.\n")

	return sb.String()
}
