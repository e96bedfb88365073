package intel

import "SecNewsScanner/internal/domain"

// Canonical keyword vocabularies. These are data, not logic: extractors and
// classifiers scan them in declaration order with case-insensitive substring
// containment. Entries mix English and Spanish because roughly a third of the
// default sources publish in Spanish.

// threatActors lists named adversary groups (APT and ransomware crews).
var threatActors = []string{
	"lazarus",
	"apt28",
	"apt29",
	"apt41",
	"fancy bear",
	"cozy bear",
	"sandworm",
	"turla",
	"kimsuky",
	"volt typhoon",
	"midnight blizzard",
	"scattered spider",
	"fin7",
	"lockbit",
	"blackcat",
	"alphv",
	"cl0p",
	"clop",
	"conti",
	"revil",
	"darkside",
	"hive",
	"royal",
	"black basta",
	"akira",
	"qilin",
	"ransomhub",
	"vice society",
	"medusa",
	"play ransomware",
}

// affectedProducts lists enterprise technologies worth flagging.
var affectedProducts = []string{
	"microsoft exchange",
	"sharepoint",
	"active directory",
	"windows",
	"office 365",
	"microsoft 365",
	"azure",
	"aws",
	"google cloud",
	"vmware",
	"esxi",
	"vcenter",
	"citrix",
	"netscaler",
	"ivanti",
	"fortinet",
	"fortigate",
	"palo alto",
	"pan-os",
	"cisco",
	"juniper",
	"sonicwall",
	"pulse secure",
	"f5 big-ip",
	"moveit",
	"goanywhere",
	"confluence",
	"jira",
	"gitlab",
	"jenkins",
	"apache",
	"nginx",
	"openssl",
	"log4j",
	"wordpress",
	"drupal",
	"magento",
	"sap",
	"oracle",
	"postgresql",
	"mysql",
	"mongodb",
	"kubernetes",
	"docker",
	"chrome",
	"firefox",
	"safari",
	"android",
	"ios",
	"macos",
	"linux",
}

// regulatoryKeywords lists compliance frameworks and regulations (EN + ES).
var regulatoryKeywords = []string{
	"gdpr",
	"rgpd",
	"nis2",
	"dora",
	"hipaa",
	"pci dss",
	"pci-dss",
	"sox",
	"iso 27001",
	"iso27001",
	"soc 2",
	"ccpa",
	"cyber resilience act",
	"esquema nacional de seguridad",
	"lopd",
	"enisa",
	"nist csf",
	"cybersecurity act",
	"ley de ciberseguridad",
	"protección de datos",
}

// ciaKeywords maps each CIA+NR dimension to its trigger keywords (EN + ES).
// Declaration order fixes the tag order in classifier output.
var ciaKeywords = []struct {
	Tag      domain.CIATag
	Keywords []string
}{
	{domain.TagConfidentiality, []string{
		"data breach", "data leak", "leaked", "exfiltration", "exfiltrated",
		"stolen data", "stolen credentials", "exposed database", "exposed data",
		"credential theft", "espionage", "eavesdropping", "unauthorized access",
		"filtración", "filtracion", "robo de datos", "datos expuestos",
		"credenciales robadas", "acceso no autorizado", "espionaje",
	}},
	{domain.TagIntegrity, []string{
		"tampering", "tampered", "defacement", "defaced", "modified",
		"manipulation", "supply chain attack", "backdoor", "trojan",
		"code injection", "sql injection", "data corruption", "poisoning",
		"manipulación", "manipulacion", "alteración", "alteracion",
		"puerta trasera", "inyección", "inyeccion", "troyano",
	}},
	{domain.TagAvailability, []string{
		"ddos", "denial of service", "denial-of-service", "outage", "downtime",
		"ransomware", "service disruption", "disrupted", "offline", "wiper",
		"unavailable", "shutdown",
		"denegación de servicio", "denegacion de servicio", "caída", "caida",
		"interrupción", "interrupcion", "fuera de servicio", "secuestro de datos",
	}},
	{domain.TagNonRepudiation, []string{
		"audit log", "audit trail", "log tampering", "log deletion",
		"digital signature", "signature forgery", "forged", "timestamping",
		"repudiation",
		"firma digital", "firma electrónica", "firma electronica",
		"registro de auditoría", "registro de auditoria", "repudio",
	}},
}

// ciaImpactTiers holds per-dimension keyword tiers for the severity-oriented
// classifier: tier 3 direct/severe, tier 2 indirect, tier 1 tangential.
var ciaImpactTiers = []struct {
	Tag   domain.CIATag
	Tiers [3][]string // index 0 = score 3, 1 = score 2, 2 = score 1
}{
	{domain.TagConfidentiality, [3][]string{
		{"data breach", "exfiltration", "stolen credentials", "filtración", "robo de datos"},
		{"data leak", "exposed database", "unauthorized access", "datos expuestos"},
		{"privacy", "confidential", "privacidad", "confidencial"},
	}},
	{domain.TagIntegrity, [3][]string{
		{"supply chain attack", "backdoor", "code injection", "puerta trasera"},
		{"tampering", "defacement", "sql injection", "manipulación"},
		{"integrity", "checksum", "integridad"},
	}},
	{domain.TagAvailability, [3][]string{
		{"ransomware", "wiper", "ddos", "denegación de servicio"},
		{"outage", "denial of service", "downtime", "caída"},
		{"slowdown", "degraded", "degradado"},
	}},
	{domain.TagNonRepudiation, [3][]string{
		{"log tampering", "log deletion", "signature forgery"},
		{"audit log", "audit trail", "firma digital"},
		{"logging", "timestamping", "auditoría"},
	}},
}

// severityKeywords trigger each severity bucket before CVSS is considered.
var severityKeywords = map[domain.SeverityLevel][]string{
	domain.SeverityCritical: {
		"critical", "zero-day", "0-day", "zero day", "actively exploited",
		"exploited in the wild", "emergency patch", "mass exploitation",
		"crítico", "critico", "explotación activa", "explotacion activa",
	},
	domain.SeverityHigh: {
		"high severity", "exploit available", "proof of concept", "poc released",
		"ransomware", "remote code execution", "unauthenticated",
		"alta gravedad", "gravedad alta", "ejecución remota",
	},
	domain.SeverityMedium: {
		"medium severity", "privilege escalation", "denial of service",
		"information disclosure", "gravedad media", "escalada de privilegios",
	},
}
