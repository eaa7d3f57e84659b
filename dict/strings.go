package dict

// dictStrings is the token catalog the static dictionary blob is built from:
// common English words, word endings, HTML/XML tags and attributes, CSS
// properties and values, JavaScript and JSON fragments, punctuation, digits,
// source-language keywords, file extensions, URL prefixes, abbreviations and
// PDF markers. The blob is the concatenation of these strings in this exact
// order; both sides must build the same blob.
var dictStrings = []string{
	// Most common English words (sorted by frequency)
	"the ", "The ", " the ", " and ", "and ", " of ", " to ", " in ", " is ",
	"that ", " that", " for ", "was ", " was", " on ", " with ", "his ", "they ",
	"are ", " are", " be ", " at ", " one ", "have ", " have", "this ", " this",
	"from ", " from", " or ", " had ", "had ", " by ", " not ", "but ", " but",
	"what ", " what", "all ", " all", "were ", " were", "when ", " when",
	"your ", " your", "can ", " can", "said ", " said", "there ", " there",
	"use ", " use", "each ", " each", "which ", " which", "she ", " she",
	"how ", " how", "their ", " their", "will ", " will", "other ", " other",
	"about ", " about", "out ", " out", "many ", " many", "then ", " then",
	"them ", " them", "these ", " these", "some ", " some", "her ", " her",
	"would ", " would", "make ", " make", "like ", " like", "into ", " into",
	"has ", " has", "two ", " two", "more ", " more", "write ", " write",
	"see ", " see", "number ", " number", "way ", " way", "could ", " could",
	"people ", " people", "than ", " than", "first ", " first", "been ", " been",
	"call ", " call", "who ", " who", "its ", " its", "now ", " now",
	"find ", " find", "long ", " long", "down ", " down", "day ", " day",
	"did ", " did", "get ", " get", "come ", " come", "made ", " made",
	"may ", " may", "part ", " part",

	// Common word endings
	"tion ", "tion.", "tion,", "tions ", "ing ", "ing.", "ing,", "ings ",
	"ment ", "ment.", "ment,", "ments ", "able ", "ible ", "ness ", "less ",
	"ful ", "ous ", "ive ", "ed ", "ed.", "ed,", "ly ", "ly.", "ly,",
	"er ", "er.", "er,", "ers ", "est ", "al ", "al.", "al,",

	// HTML/XML common patterns
	"<!DOCTYPE html>", "<!DOCTYPE ", "<html>", "</html>", "<head>", "</head>",
	"<body>", "</body>", "<div>", "</div>", "<span>", "</span>",
	"<p>", "</p>", "<a ", "</a>", "<img ", "<br>", "<br/>", "<hr>",
	"<ul>", "</ul>", "<ol>", "</ol>", "<li>", "</li>",
	"<table>", "</table>", "<tr>", "</tr>", "<td>", "</td>", "<th>", "</th>",
	"<form>", "</form>", "<input ", "<button>", "</button>",
	"<script>", "</script>", "<style>", "</style>", "<link ", "<meta ",
	"<title>", "</title>", "<header>", "</header>", "<footer>", "</footer>",
	"<nav>", "</nav>", "<section>", "</section>", "<article>", "</article>",
	"<h1>", "</h1>", "<h2>", "</h2>", "<h3>", "</h3>",

	// HTML attributes
	" class=\"", " id=\"", " href=\"", " src=\"", " style=\"", " type=\"",
	" name=\"", " value=\"", " alt=\"", " title=\"", " width=\"", " height=\"",
	" rel=\"", " target=\"", " data-", " aria-", " onclick=\"", " onload=\"",

	// CSS properties
	"font-family:", "font-size:", "font-weight:", "color:", "background:",
	"background-color:", "margin:", "margin-top:", "margin-bottom:",
	"margin-left:", "margin-right:", "padding:", "padding-top:",
	"padding-bottom:", "padding-left:", "padding-right:", "border:",
	"border-radius:", "display:", "position:", "width:", "height:",
	"max-width:", "min-width:", "text-align:", "line-height:", "float:",
	"clear:", "overflow:", "z-index:", "opacity:", "transform:",

	// Common CSS values
	": 0;", ": 0px;", ": auto;", ": none;", ": block;", ": inline;",
	": inline-block;", ": flex;", ": relative;", ": absolute;", ": fixed;",
	"px;", "em;", "rem;", "%;", "vh;", "vw;",

	// JavaScript patterns
	"function ", "function(", "return ", "return;", "var ", "let ", "const ",
	"if (", "if(", "else {", "else{", "else if", "for (", "for(",
	"while (", "while(", "switch (", "switch(", "case ", "break;",
	"continue;", "null", "undefined", "true", "false", "this.",
	"document.", "window.", "console.log", ".length", ".push(",
	".forEach(", ".map(", ".filter(", ".reduce(", "=>", "===", "!==",

	// JSON patterns
	"\":", "\": ", "\",", "\": \"", "\"}", "\": {", "\": [", "],",
	"null,", "true,", "false,", "null}", "true}", "false}",

	// XML/namespace patterns
	"<?xml ", "version=\"", "encoding=\"", "xmlns:", "xmlns=\"",
	"<![CDATA[", "]]>", "<!--", "-->",

	// Common punctuation sequences
	". ", ", ", "; ", ": ", "? ", "! ", "...", " - ", " – ", " — ",
	"(", ")", "[", "]", "{", "}", "\"", "'", "`",
	"\r\n", "\n\n", "  ", "    ", "\t",

	// Numbers
	"0", "1", "2", "3", "4", "5", "6", "7", "8", "9",
	"10", "20", "100", "1000", "2000", "2024", "2025", "2026",

	// Programming common
	"#include ", "#define ", "#ifdef ", "#ifndef ", "#endif", "#pragma ",
	"public ", "private ", "protected ", "static ", "virtual ", "override ",
	"class ", "struct ", "enum ", "typedef ", "template ", "typename ",
	"namespace ", "using ", "new ", "delete ", "void ", "int ", "char ",
	"bool ", "float ", "double ", "string ", "vector", "map", "set",
	"std::", "nullptr", "sizeof(", "static_cast<", "dynamic_cast<",

	// File extensions in paths
	".html", ".htm", ".css", ".js", ".json", ".xml", ".txt", ".md",
	".png", ".jpg", ".jpeg", ".gif", ".svg", ".pdf", ".zip",
	".cpp", ".hpp", ".c", ".h", ".py", ".java", ".go", ".rs",

	// URL patterns
	"http://", "https://", "www.", ".com", ".org", ".net", ".io",
	"/index", "/api/", "/v1/", "/v2/",

	// Common abbreviations
	"e.g.", "i.e.", "etc.", "vs.", "Dr.", "Mr.", "Mrs.", "Ms.",

	// PDF patterns
	"%PDF-", "endobj", "endstream", "stream", " obj\n<<", ">> \n",
	" /Type /", " /Pages ", " /Kids [", " /Count ", " /Parent ",
	" /MediaBox [", " /Contents ", " /Length ", " 0 R", " 0 R >>",
	" 0 R]\n", "trailer", "startxref", "%%EOF", "xref\n",
	"0000000", " 65535 f", " 00000 n", "/Catalog", "/Page",
}
