package dialog

// Bot copy. Prompts mix Hindi and English the way users write to the bot.
const (
	PromptWelcome    = "नमस्ते 👋 Welcome to WEP Bot!\nShall we find schemes for you? (Yes/No)"
	PromptNotReady   = "ठीक है। जब तैयार हों, 'Yes' लिखें।"
	PromptSector     = "Great! कृपया अपना सेक्टर बताएं:\n1. Food Processing\n2. Handicrafts\n3. Services\n4. Others"
	PromptAge        = "आपका व्यवसाय कितने साल पुराना है?\n1. 1 साल से कम\n2. 1-3 साल\n3. 3+ साल"
	PromptRegistered = "क्या आपका व्यवसाय पंजीकृत (GST/MSME) है? (Yes/No)"
	PromptAssistance = "आपको किस प्रकार की सहायता चाहिए?\n1. Loan\n2. Training\n3. Marketing\n4. Technology"
	PromptClosing    = "Demo end ✅. धन्यवाद!"

	// PromptUnavailable is sent when the session could not be loaded or saved.
	PromptUnavailable = "क्षमा करें, अभी कुछ गड़बड़ है। कृपया थोड़ी देर बाद फिर लिखें।"

	resultsHeader = "आपके प्रोफ़ाइल के आधार पर ये योजनाएँ उपयुक्त हैं:\n"
	noResults     = "क्षमा करें, अभी आपके लिए कोई योजना नहीं मिली। (No matching schemes found.)"
)

var startTokens = []string{"yes", "हाँ", "haan"}
