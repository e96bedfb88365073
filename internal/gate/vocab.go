package gate

// Keyword tiers for the pre-summarization gate. Data, not logic: Decide
// scans each list in declaration order and the first hit wins. Entries mix
// English and Spanish to cover the Spanish-language default sources.

// blacklist rejects noise regardless of any technical or business signal
// also present: marketing, tutorials, listicles, opinion pieces, roundups
// and corrections.
var blacklist = []string{
	"webinar",
	"sponsored",
	"advertorial",
	"partner content",
	"press release",
	"black friday",
	"descuento",
	"promoción",
	"promocion",
	"how to",
	"how-to",
	"tutorial",
	"step by step",
	"beginner's guide",
	"guía para",
	"guia para",
	"cómo proteger",
	"como proteger",
	"top 5",
	"top 10",
	"top 20",
	"best of",
	"best tools",
	"mejores herramientas",
	"opinion:",
	"opinión:",
	"editorial:",
	"comment:",
	"weekly roundup",
	"week in review",
	"news roundup",
	"recap:",
	"resumen semanal",
	"correction:",
	"corrección:",
	"correccion:",
}

// technicalWhitelist admits articles with concrete technical signal. CVE
// identifiers and CVSS>=9 mentions are matched by pattern in Decide, not
// listed here.
var technicalWhitelist = []string{
	"zero-day",
	"0-day",
	"zero day",
	"remote code execution",
	"rce",
	"privilege escalation",
	"actively exploited",
	"exploited in the wild",
	"proof of concept",
	"security advisory",
	"vulnerability disclosed",
	"apt28",
	"apt29",
	"apt41",
	"lazarus",
	"sandworm",
	"volt typhoon",
	"lockbit",
	"blackcat",
	"alphv",
	"cl0p",
	"black basta",
	"ransomware gang",
	"ransomware group",
	"critical infrastructure",
	"infraestructura crítica",
	"infraestructura critica",
	"scada",
	"power grid",
	"water utility",
	"microsoft exchange",
	"active directory",
	"vmware esxi",
	"fortinet",
	"fortigate",
	"citrix",
	"netscaler",
	"ivanti",
	"palo alto",
	"moveit",
	"gdpr",
	"nis2",
	"dora",
	"pci dss",
	"iso 27001",
	"esquema nacional de seguridad",
}

// businessWhitelist admits articles with executive-level business impact:
// ransom and fine amounts, operational shutdowns, high-profile entities,
// new regulation and cyber-insurance/liability language.
var businessWhitelist = []string{
	"ransom payment",
	"ransom demand",
	"million ransom",
	"million fine",
	"billion fine",
	"fine of",
	"record fine",
	"multa de",
	"sanción de",
	"sancion de",
	"operations halted",
	"production halted",
	"forced to shut down",
	"shut down operations",
	"plants closed",
	"cese de operaciones",
	"fortune 500",
	"stock exchange",
	"nasdaq",
	"ibex 35",
	"new regulation",
	"compliance deadline",
	"regulatory deadline",
	"nueva regulación",
	"nueva regulacion",
	"plazo de cumplimiento",
	"cyber insurance",
	"ciberseguro",
	"liability",
	"class action",
	"demanda colectiva",
}
