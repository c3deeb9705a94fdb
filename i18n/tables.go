package i18n

var english = [...]string{
	DocumentType:     "Document Type",
	Number:           "Number",
	Date:             "Date",
	DueDate:          "Due Date",
	From:             "From",
	To:               "To",
	TaxID:            "Tax ID",
	Mobile:           "Mobile",
	Email:            "Email",
	Details:          "Details",
	Description:      "Description",
	Quantity:         "Quantity",
	UnitPrice:        "Unit Price",
	VATRate:          "VAT (%)",
	VATAmount:        "VAT Amount",
	Total:            "Total",
	Subtotal:         "Subtotal",
	TotalVAT:         "Total VAT",
	PaymentTerms:     "Payment Terms",
	DeliveryTerms:    "Delivery Terms",
	AcceptChecks:     "Accept Checks?",
	ServicesProducts: "Services / Products",
	Invoice:          "Invoice",
	Quote:            "Quote",
	Yes:              "Yes",
	MsgNoItems:       "Please add at least one item.",
	MsgQuantity:      "Quantity must be at least 1.",
	MsgUnitPrice:     "Unit price must not be negative.",
	MsgVATRate:       "VAT rate must not be negative.",
	MsgMissingLabel:  "Missing translation for label %s.",
	MsgLogoTooLarge:  "The logo exceeds the maximum size of %s.",
	MsgRowTooTall:    "A table row does not fit on a page.",
	MsgTextTooTall:   "A text block does not fit on a page.",
	MsgLogoFormat:    "The logo must be a PNG, JPEG or GIF image.",
}

var french = [...]string{
	DocumentType:     "Type de Document",
	Number:           "Numéro",
	Date:             "Date",
	DueDate:          "Date d’échéance",
	From:             "De",
	To:               "A",
	TaxID:            "Identifiant Fiscal",
	Mobile:           "Mobile",
	Email:            "Email",
	Details:          "Détails",
	Description:      "Description",
	Quantity:         "Quantité",
	UnitPrice:        "Prix Unitaire",
	VATRate:          "TVA (%)",
	VATAmount:        "Montant TVA",
	Total:            "Total",
	Subtotal:         "Sous Total",
	TotalVAT:         "TVA",
	PaymentTerms:     "Conditions de Paiement",
	DeliveryTerms:    "Conditions de Livraison",
	AcceptChecks:     "Accepter les chèques ?",
	ServicesProducts: "Services / Produits",
	Invoice:          "Facture",
	Quote:            "Devis",
	Yes:              "Oui",
	MsgNoItems:       "Veuillez ajouter au moins un article.",
	MsgQuantity:      "La quantité doit être au moins 1.",
	MsgUnitPrice:     "Le prix unitaire ne peut pas être négatif.",
	MsgVATRate:       "Le taux de TVA ne peut pas être négatif.",
	MsgMissingLabel:  "Traduction manquante pour le libellé %s.",
	MsgLogoTooLarge:  "Le logo dépasse la taille maximale de %s.",
	MsgRowTooTall:    "Une ligne du tableau ne tient pas sur une page.",
	MsgTextTooTall:   "Un bloc de texte ne tient pas sur une page.",
	MsgLogoFormat:    "Le logo doit être une image PNG, JPEG ou GIF.",
}

var arabic = [...]string{
	DocumentType:     "نوع المستند",
	Number:           "الرقم",
	Date:             "التاريخ",
	DueDate:          "تاريخ الاستحقاق",
	From:             "من",
	To:               "إلى",
	TaxID:            "الرقم الضريبي",
	Mobile:           "رقم الجوال",
	Email:            "البريد الإلكتروني",
	Details:          "التفاصيل",
	Description:      "الوصف",
	Quantity:         "الكمية",
	UnitPrice:        "سعر الوحدة",
	VATRate:          "نسبة الضريبة",
	VATAmount:        "مبلغ الضريبة",
	Total:            "الإجمالي",
	Subtotal:         "الإجمالي الفرعي",
	TotalVAT:         "مجموع الضريبة",
	PaymentTerms:     "شروط الدفع",
	DeliveryTerms:    "شروط التسليم",
	AcceptChecks:     "قبول الشيكات؟",
	ServicesProducts: "الخدمات / المنتجات",
	Invoice:          "فاتورة",
	Quote:            "عرض سعر",
	Yes:              "نعم",
	MsgNoItems:       "الرجاء إضافة عنصر واحد على الأقل.",
	MsgQuantity:      "يجب أن تكون الكمية 1 على الأقل.",
	MsgUnitPrice:     "لا يمكن أن يكون سعر الوحدة سالبًا.",
	MsgVATRate:       "لا يمكن أن تكون نسبة الضريبة سالبة.",
	MsgMissingLabel:  "ترجمة مفقودة للتسمية %s.",
	MsgLogoTooLarge:  "يتجاوز الشعار الحجم الأقصى %s.",
	MsgRowTooTall:    "صف الجدول لا يتسع في صفحة واحدة.",
	MsgTextTooTall:   "نص لا يتسع في صفحة واحدة.",
	MsgLogoFormat:    "يجب أن يكون الشعار صورة PNG أو JPEG أو GIF.",
}

// compile-time checks: every table has exactly NumKeys entries
const (
	_ = uint(len(english) - int(NumKeys))
	_ = uint(int(NumKeys) - len(english))
	_ = uint(len(french) - int(NumKeys))
	_ = uint(int(NumKeys) - len(french))
	_ = uint(len(arabic) - int(NumKeys))
	_ = uint(int(NumKeys) - len(arabic))
)
