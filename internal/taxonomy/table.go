package taxonomy

import "github.com/Pinoccchio/LawbotWeb-sub000/internal/domain"

// Unit names, one per crime category.
const (
	UnitSocialMediaCommunications = "Social Media and Communications Crimes Unit"
	UnitFinancialCyberCrime       = "Financial Cyber Crime Unit"
	UnitWomenAndChildren          = "Cyber Crime Against Women and Children"
	UnitCyberSecurityIntrusion    = "Cyber Security and Intrusion Unit"
	UnitMalwareResponse           = "Malware Analysis and Response Unit"
	UnitIdentityProtection        = "Identity Protection and Data Privacy Unit"
	UnitECommerceFraud            = "E-Commerce Fraud Unit"
	UnitIntellectualProperty      = "Intellectual Property Crimes Unit"
	UnitCryptocurrency            = "Cryptocurrency Crimes Unit"
	UnitCriticalInfrastructure    = "Critical Infrastructure Protection Unit"
)

// Version identifies the static table below. Bump it with every change to the
// table; cmd/seed-units records it next to the synced units.
const Version = "2024.2"

// categoryUnits binds every category to its responsible unit.
var categoryUnits = map[domain.CrimeCategory]string{
	domain.CategoryCommunicationSocialMedia: UnitSocialMediaCommunications,
	domain.CategoryFinancialFraud:           UnitFinancialCyberCrime,
	domain.CategoryHarassmentExploitation:   UnitWomenAndChildren,
	domain.CategoryHackingIntrusion:         UnitCyberSecurityIntrusion,
	domain.CategoryMalware:                  UnitMalwareResponse,
	domain.CategoryIdentityPrivacy:          UnitIdentityProtection,
	domain.CategoryECommerce:                UnitECommerceFraud,
	domain.CategoryIntellectualProperty:     UnitIntellectualProperty,
	domain.CategoryCryptocurrency:           UnitCryptocurrency,
	domain.CategoryCriticalInfrastructure:   UnitCriticalInfrastructure,
}

type seed struct {
	key     string
	display string
}

// table lists the crime types reported by the mobile client, grouped by category.
var table = []struct {
	category domain.CrimeCategory
	types    []seed
}{
	{domain.CategoryCommunicationSocialMedia, []seed{
		{"phishing", "Phishing"},
		{"smishing", "Smishing"},
		{"vishing", "Vishing"},
		{"socialMediaAccountHijacking", "Social Media Account Hijacking"},
		{"fakeNewsDisinformation", "Fake News and Disinformation"},
		{"onlineImpersonation", "Online Impersonation"},
		{"cyberLibel", "Cyber Libel"},
		{"spamCampaigns", "Spam Campaigns"},
	}},
	{domain.CategoryFinancialFraud, []seed{
		{"onlineBankingFraud", "Online Banking Fraud"},
		{"creditCardFraud", "Credit Card Fraud"},
		{"atmSkimming", "ATM Skimming"},
		{"onlineLendingScam", "Online Lending Scam"},
		{"romanceScam", "Romance Scam"},
		{"advanceFeeFraud", "Advance Fee Fraud"},
		{"businessEmailCompromise", "Business Email Compromise"},
		{"eWalletFraud", "E-Wallet Fraud"},
	}},
	{domain.CategoryHarassmentExploitation, []seed{
		{"onlinePredatoryBehavior", "Online Predatory Behavior"},
		{"cyberbullying", "Cyberbullying"},
		{"cyberstalking", "Cyberstalking"},
		{"sextortion", "Sextortion"},
		{"nonConsensualImageSharing", "Non-Consensual Intimate Image Sharing"},
		{"onlineChildSexualExploitation", "Online Child Sexual Exploitation"},
		{"onlineHarassment", "Online Harassment"},
		{"doxxing", "Doxxing"},
	}},
	{domain.CategoryHackingIntrusion, []seed{
		{"unauthorizedAccess", "Unauthorized System Access"},
		{"websiteDefacement", "Website Defacement"},
		{"accountTakeover", "Account Takeover"},
		{"passwordCracking", "Password Cracking"},
		{"sqlInjection", "SQL Injection Attack"},
		{"wifiIntrusion", "Wi-Fi Network Intrusion"},
		{"insiderThreat", "Insider Threat"},
		{"illegalInterception", "Illegal Interception"},
	}},
	{domain.CategoryMalware, []seed{
		{"ransomware", "Ransomware"},
		{"spyware", "Spyware"},
		{"trojanMalware", "Trojan Malware"},
		{"botnetActivity", "Botnet Activity"},
		{"keylogger", "Keylogger"},
		{"cryptojacking", "Cryptojacking"},
		{"maliciousMobileApp", "Malicious Mobile Application"},
		{"computerVirus", "Computer Virus"},
	}},
	{domain.CategoryIdentityPrivacy, []seed{
		{"identityTheft", "Identity Theft"},
		{"dataBreach", "Data Breach"},
		{"simSwapFraud", "SIM Swap Fraud"},
		{"personalDataLeak", "Personal Data Leak"},
		{"syntheticIdentityFraud", "Synthetic Identity Fraud"},
		{"unauthorizedDataProcessing", "Unauthorized Data Processing"},
		{"documentForgery", "Digital Document Forgery"},
		{"credentialStuffing", "Credential Stuffing"},
	}},
	{domain.CategoryECommerce, []seed{
		{"onlineShoppingScam", "Online Shopping Scam"},
		{"nonDeliveryScam", "Non-Delivery Scam"},
		{"fakeOnlineSeller", "Fake Online Seller"},
		{"counterfeitGoodsOnline", "Counterfeit Goods Sold Online"},
		{"paymentFraud", "Online Payment Fraud"},
		{"auctionFraud", "Online Auction Fraud"},
		{"refundScam", "Refund Scam"},
		{"fakeTravelBooking", "Fake Travel Booking"},
	}},
	{domain.CategoryIntellectualProperty, []seed{
		{"onlinePiracy", "Online Piracy"},
		{"copyrightInfringement", "Copyright Infringement"},
		{"trademarkCounterfeiting", "Trademark Counterfeiting"},
		{"softwarePiracy", "Software Piracy"},
		{"contentTheft", "Digital Content Theft"},
		{"illegalStreaming", "Illegal Streaming"},
		{"tradeSecretTheft", "Trade Secret Theft"},
		{"cybersquatting", "Cybersquatting"},
	}},
	{domain.CategoryCryptocurrency, []seed{
		{"cryptoInvestmentScam", "Cryptocurrency Investment Scam"},
		{"ponziScheme", "Online Ponzi Scheme"},
		{"pyramidScheme", "Online Pyramid Scheme"},
		{"fakeExchange", "Fake Cryptocurrency Exchange"},
		{"rugPull", "Rug Pull"},
		{"cryptoWalletTheft", "Cryptocurrency Wallet Theft"},
		{"forexScam", "Forex Trading Scam"},
		{"moneyMuleRecruitment", "Money Mule Recruitment"},
	}},
	{domain.CategoryCriticalInfrastructure, []seed{
		{"ddosAttack", "DDoS Attack"},
		{"cyberTerrorism", "Cyber Terrorism"},
		{"cyberEspionage", "Cyber Espionage"},
		{"governmentSystemAttack", "Attack on Government Systems"},
		{"utilityInfrastructureAttack", "Attack on Utility Infrastructure"},
		{"onlineRadicalization", "Online Radicalization"},
		{"onlineBombThreat", "Online Bomb Threat"},
		{"darkWebTrafficking", "Dark Web Trafficking"},
	}},
}

// defaultMappings flattens the static table into Mapping records.
func defaultMappings() []Mapping {
	var out []Mapping
	for _, group := range table {
		unit := categoryUnits[group.category]
		for _, s := range group.types {
			out = append(out, Mapping{
				ClientKey:   s.key,
				DisplayName: s.display,
				Category:    group.category,
				Unit:        unit,
			})
		}
	}
	return out
}
