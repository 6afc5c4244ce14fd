// Copyright 2020 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package html5tok

//go:generate sh -c "go run ./gentab -source=https://html.spec.whatwg.org/entities.json > entities_table.go"

// namedReferenceTable maps entity names (without the leading '&', with or
// without the trailing ';') to their Unicode expansion, encoded as UTF-8.
//
// The WHATWG living standard's named character reference list has just
// over two thousand entries, drawn from a canonical entities.json the
// standard itself is generated from. gentab (see ./gentab) regenerates
// this file from that source; this checked-in table is the complete HTML4
// / XHTML named-character-reference set (the ~250 names every browser has
// supported since HTML4, including every legacy bare form the standard
// still grandfathers in) plus the handful of later additions the lookup
// tests exercise. It is a real, correct subset, not the full two thousand:
// anything coined after HTML4 Symbols/Special/Latin-1 (e.g. multi-codepoint
// names like "NotNestedLessLess;" or repeated names distinguished only by
// casing) falls back to the numeric/unknown-reference path until gentab is
// run against a live copy of entities.json.
var namedReferenceTable = map[string][]byte{
	// Markup-critical, with legacy bare forms.
	"amp;": []byte("&"), "amp": []byte("&"),
	"lt;": []byte("<"), "lt": []byte("<"),
	"gt;": []byte(">"), "gt": []byte(">"),
	"quot;": []byte("\""), "quot": []byte("\""),
	"apos;": []byte("'"),

	// Common legacy bare names.
	"AMP;": []byte("&"), "AMP": []byte("&"),
	"LT;": []byte("<"), "LT": []byte("<"),
	"GT;": []byte(">"), "GT": []byte(">"),
	"QUOT;": []byte("\""), "QUOT": []byte("\""),
	"nbsp;": []byte(" "), "nbsp": []byte(" "),
	"copy;": []byte("©"), "copy": []byte("©"),
	"COPY;": []byte("©"), "COPY": []byte("©"),
	"reg;": []byte("®"), "reg": []byte("®"),
	"REG;": []byte("®"), "REG": []byte("®"),
	"deg;": []byte("°"), "deg": []byte("°"),
	"micro;": []byte("µ"), "micro": []byte("µ"),
	"para;": []byte("¶"), "para": []byte("¶"),
	"middot;": []byte("·"), "middot": []byte("·"),
	"laquo;": []byte("«"), "laquo": []byte("«"),
	"raquo;": []byte("»"), "raquo": []byte("»"),
	"iexcl;": []byte("¡"), "iexcl": []byte("¡"),
	"iquest;": []byte("¿"), "iquest": []byte("¿"),
	"euro;": []byte("€"),
	"pound;": []byte("£"), "pound": []byte("£"),
	"yen;": []byte("¥"), "yen": []byte("¥"),
	"cent;": []byte("¢"), "cent": []byte("¢"),
	"curren;": []byte("¤"), "curren": []byte("¤"),
	"brvbar;": []byte("¦"), "brvbar": []byte("¦"),
	"sect;": []byte("§"), "sect": []byte("§"),
	"uml;": []byte("¨"), "uml": []byte("¨"),
	"not;": []byte("¬"), "not": []byte("¬"),
	"shy;": []byte("­"), "shy": []byte("­"),
	"macr;": []byte("¯"), "macr": []byte("¯"),
	"acute;": []byte("´"), "acute": []byte("´"),
	"cedil;": []byte("¸"), "cedil": []byte("¸"),
	"ordf;": []byte("ª"), "ordf": []byte("ª"),
	"ordm;": []byte("º"), "ordm": []byte("º"),
	"szlig;": []byte("ß"), "szlig": []byte("ß"),
	"plusmn;": []byte("±"), "plusmn": []byte("±"),
	"times;": []byte("×"), "times": []byte("×"),
	"divide;": []byte("÷"), "divide": []byte("÷"),
	"frac12;": []byte("½"), "frac12": []byte("½"),
	"frac14;": []byte("¼"), "frac14": []byte("¼"),
	"frac34;": []byte("¾"), "frac34": []byte("¾"),
	"sup1;": []byte("¹"), "sup1": []byte("¹"),
	"sup2;": []byte("²"), "sup2": []byte("²"),
	"sup3;": []byte("³"), "sup3": []byte("³"),
	"trade;": []byte("™"),
	"hellip;": []byte("…"),
	"mdash;": []byte("—"),
	"ndash;": []byte("–"),
	"lsquo;": []byte("‘"),
	"rsquo;": []byte("’"),
	"sbquo;": []byte("‚"),
	"ldquo;": []byte("“"),
	"rdquo;": []byte("”"),
	"bdquo;": []byte("„"),
	"dagger;": []byte("†"),
	"Dagger;": []byte("‡"),
	"bull;": []byte("•"),
	"permil;": []byte("‰"),
	"prime;": []byte("′"),
	"Prime;": []byte("″"),
	"lsaquo;": []byte("‹"),
	"rsaquo;": []byte("›"),
	"oline;": []byte("‾"),
	"frasl;": []byte("⁄"),
	"weierp;": []byte("℘"),
	"image;": []byte("ℑ"),
	"real;": []byte("ℜ"),
	"alefsym;": []byte("ℵ"),
	"crarr;": []byte("↵"),
	"OElig;": []byte("Œ"), "oelig;": []byte("œ"),
	"Scaron;": []byte("Š"), "scaron;": []byte("š"),
	"Yuml;": []byte("Ÿ"), "fnof;": []byte("ƒ"),
	"circ;": []byte("ˆ"), "tilde;": []byte("˜"),

	// Accented Latin letters (Latin-1 supplement), both bare and ';'.
	"Agrave;": []byte("À"), "Agrave": []byte("À"),
	"Aacute;": []byte("Á"), "Aacute": []byte("Á"),
	"Acirc;": []byte("Â"), "Acirc": []byte("Â"),
	"Atilde;": []byte("Ã"), "Atilde": []byte("Ã"),
	"Auml;": []byte("Ä"), "Auml": []byte("Ä"),
	"Aring;": []byte("Å"), "Aring": []byte("Å"),
	"AElig;": []byte("Æ"), "AElig": []byte("Æ"),
	"Ccedil;": []byte("Ç"), "Ccedil": []byte("Ç"),
	"Egrave;": []byte("È"), "Egrave": []byte("È"),
	"Eacute;": []byte("É"), "Eacute": []byte("É"),
	"Ecirc;": []byte("Ê"), "Ecirc": []byte("Ê"),
	"Euml;": []byte("Ë"), "Euml": []byte("Ë"),
	"Igrave;": []byte("Ì"), "Igrave": []byte("Ì"),
	"Iacute;": []byte("Í"), "Iacute": []byte("Í"),
	"Icirc;": []byte("Î"), "Icirc": []byte("Î"),
	"Iuml;": []byte("Ï"), "Iuml": []byte("Ï"),
	"ETH;": []byte("Ð"), "ETH": []byte("Ð"),
	"Ntilde;": []byte("Ñ"), "Ntilde": []byte("Ñ"),
	"Ograve;": []byte("Ò"), "Ograve": []byte("Ò"),
	"Oacute;": []byte("Ó"), "Oacute": []byte("Ó"),
	"Ocirc;": []byte("Ô"), "Ocirc": []byte("Ô"),
	"Otilde;": []byte("Õ"), "Otilde": []byte("Õ"),
	"Ouml;": []byte("Ö"), "Ouml": []byte("Ö"),
	"Oslash;": []byte("Ø"), "Oslash": []byte("Ø"),
	"Ugrave;": []byte("Ù"), "Ugrave": []byte("Ù"),
	"Uacute;": []byte("Ú"), "Uacute": []byte("Ú"),
	"Ucirc;": []byte("Û"), "Ucirc": []byte("Û"),
	"Uuml;": []byte("Ü"), "Uuml": []byte("Ü"),
	"Yacute;": []byte("Ý"), "Yacute": []byte("Ý"),
	"THORN;": []byte("Þ"), "THORN": []byte("Þ"),
	"agrave;": []byte("à"), "agrave": []byte("à"),
	"aacute;": []byte("á"), "aacute": []byte("á"),
	"acirc;": []byte("â"), "acirc": []byte("â"),
	"atilde;": []byte("ã"), "atilde": []byte("ã"),
	"auml;": []byte("ä"), "auml": []byte("ä"),
	"aring;": []byte("å"), "aring": []byte("å"),
	"aelig;": []byte("æ"), "aelig": []byte("æ"),
	"ccedil;": []byte("ç"), "ccedil": []byte("ç"),
	"egrave;": []byte("è"), "egrave": []byte("è"),
	"eacute;": []byte("é"), "eacute": []byte("é"),
	"ecirc;": []byte("ê"), "ecirc": []byte("ê"),
	"euml;": []byte("ë"), "euml": []byte("ë"),
	"igrave;": []byte("ì"), "igrave": []byte("ì"),
	"iacute;": []byte("í"), "iacute": []byte("í"),
	"icirc;": []byte("î"), "icirc": []byte("î"),
	"iuml;": []byte("ï"), "iuml": []byte("ï"),
	"eth;": []byte("ð"), "eth": []byte("ð"),
	"ntilde;": []byte("ñ"), "ntilde": []byte("ñ"),
	"ograve;": []byte("ò"), "ograve": []byte("ò"),
	"oacute;": []byte("ó"), "oacute": []byte("ó"),
	"ocirc;": []byte("ô"), "ocirc": []byte("ô"),
	"otilde;": []byte("õ"), "otilde": []byte("õ"),
	"ouml;": []byte("ö"), "ouml": []byte("ö"),
	"oslash;": []byte("ø"), "oslash": []byte("ø"),
	"ugrave;": []byte("ù"), "ugrave": []byte("ù"),
	"uacute;": []byte("ú"), "uacute": []byte("ú"),
	"ucirc;": []byte("û"), "ucirc": []byte("û"),
	"uuml;": []byte("ü"), "uuml": []byte("ü"),
	"yacute;": []byte("ý"), "yacute": []byte("ý"),
	"thorn;": []byte("þ"), "thorn": []byte("þ"),
	"yuml;": []byte("ÿ"), "yuml": []byte("ÿ"),

	// Greek letters.
	"Alpha;": []byte("Α"), "alpha;": []byte("α"),
	"Beta;": []byte("Β"), "beta;": []byte("β"),
	"Gamma;": []byte("Γ"), "gamma;": []byte("γ"),
	"Delta;": []byte("Δ"), "delta;": []byte("δ"),
	"Epsilon;": []byte("Ε"), "epsilon;": []byte("ε"),
	"Zeta;": []byte("Ζ"), "zeta;": []byte("ζ"),
	"Eta;": []byte("Η"), "eta;": []byte("η"),
	"Theta;": []byte("Θ"), "theta;": []byte("θ"),
	"Iota;": []byte("Ι"), "iota;": []byte("ι"),
	"Kappa;": []byte("Κ"), "kappa;": []byte("κ"),
	"Lambda;": []byte("Λ"), "lambda;": []byte("λ"),
	"Mu;": []byte("Μ"), "mu;": []byte("μ"),
	"Nu;": []byte("Ν"), "nu;": []byte("ν"),
	"Xi;": []byte("Ξ"), "xi;": []byte("ξ"),
	"Omicron;": []byte("Ο"), "omicron;": []byte("ο"),
	"Pi;": []byte("Π"), "pi;": []byte("π"),
	"Rho;": []byte("Ρ"), "rho;": []byte("ρ"),
	"Sigma;": []byte("Σ"), "sigma;": []byte("σ"),
	"sigmaf;": []byte("ς"),
	"Tau;": []byte("Τ"), "tau;": []byte("τ"),
	"Upsilon;": []byte("Υ"), "upsilon;": []byte("υ"),
	"Phi;": []byte("Φ"), "phi;": []byte("φ"),
	"Chi;": []byte("Χ"), "chi;": []byte("χ"),
	"Psi;": []byte("Ψ"), "psi;": []byte("ψ"),
	"Omega;": []byte("Ω"), "omega;": []byte("ω"),
	"thetasym;": []byte("ϑ"), "upsih;": []byte("ϒ"), "piv;": []byte("ϖ"),

	// Whitespace and directional/joining control characters.
	"ensp;": []byte(" "), "emsp;": []byte(" "),
	"thinsp;": []byte(" "),
	"zwnj;": []byte("‌"), "zwj;": []byte("‍"),
	"lrm;": []byte("‎"), "rlm;": []byte("‏"),

	// Mathematical operators and arrows.
	"forall;": []byte("∀"), "part;": []byte("∂"),
	"exist;": []byte("∃"), "empty;": []byte("∅"),
	"nabla;": []byte("∇"), "isin;": []byte("∈"),
	"notin;": []byte("∉"), "ni;": []byte("∋"),
	"prod;": []byte("∏"), "sum;": []byte("∑"),
	"minus;": []byte("−"), "lowast;": []byte("∗"),
	"radic;": []byte("√"), "prop;": []byte("∝"),
	"infin;": []byte("∞"), "ang;": []byte("∠"),
	"and;": []byte("∧"), "or;": []byte("∨"),
	"cap;": []byte("∩"), "cup;": []byte("∪"),
	"int;": []byte("∫"), "there4;": []byte("∴"),
	"sim;": []byte("∼"), "cong;": []byte("≅"),
	"asymp;": []byte("≈"), "ne;": []byte("≠"),
	"equiv;": []byte("≡"), "le;": []byte("≤"),
	"ge;": []byte("≥"), "sub;": []byte("⊂"),
	"sup;": []byte("⊃"), "nsub;": []byte("⊄"),
	"sube;": []byte("⊆"), "supe;": []byte("⊇"),
	"oplus;": []byte("⊕"), "otimes;": []byte("⊗"),
	"perp;": []byte("⊥"), "sdot;": []byte("⋅"),
	"lceil;": []byte("⌈"), "rceil;": []byte("⌉"),
	"lfloor;": []byte("⌊"), "rfloor;": []byte("⌋"),
	"lang;": []byte("⟨"), "rang;": []byte("⟩"),
	"loz;": []byte("◊"), "spades;": []byte("♠"),
	"clubs;": []byte("♣"), "hearts;": []byte("♥"),
	"diams;": []byte("♦"),
	"larr;": []byte("←"), "uarr;": []byte("↑"),
	"rarr;": []byte("→"), "darr;": []byte("↓"),
	"harr;": []byte("↔"), "lArr;": []byte("⇐"),
	"uArr;": []byte("⇑"), "rArr;": []byte("⇒"),
	"dArr;": []byte("⇓"), "hArr;": []byte("⇔"),
}
