package banks

// all is the resolution order. Card issuers precede their parent banks
// and wallets precede telecom short codes so that the most specific
// claimant wins; within a region the order is roughly by message volume.
var all = []Parser{
	// India — banks.
	newSBICard(),
	newSBI(),
	newHDFC(),
	newICICI(),
	newAxis(),
	newKotak(),
	newBOB(),
	newPNB(),
	newCanara(),
	newUnionBank(),
	newIDFCFirst(),
	newIndusInd(),
	newYesBank(),
	newFederal(),
	newRBL(),
	newAUBank(),
	newIndianBank(),
	newIOB(),
	newBOI(),
	newCentralBank(),
	newUCOBank(),
	newBandhan(),
	newKarnatakaBank(),
	newSouthIndian(),
	newKVB(),
	newCSB(),
	newIDBI(),
	newDBS(),
	newCiti(),
	newHSBC(),
	newAmex(),
	newSaraswat(),
	newJKBank(),
	newStandardChartered(),
	newDCB(),
	newTMB(),
	newEquitas(),
	newUjjivan(),
	newJanaBank(),

	// India — wallets and card fintechs.
	newPaytm(),
	newPhonePe(),
	newAmazonPay(),
	newMobiKwik(),
	newAirtelBank(),
	newIPPB(),
	newJupiter(),
	newFiMoney(),
	newOneCard(),
	newSlice(),
	newLazyPay(),
	newSimpl(),
	newCred(),
	newFreecharge(),
	newNiyo(),

	// Saudi Arabia.
	newAlRajhi(),
	newSNB(),
	newRiyadBank(),
	newSAB(),
	newAlinma(),
	newSTCPay(),

	// United Arab Emirates.
	newEmiratesNBD(),
	newADCB(),
	newFAB(),
	newMashreq(),
	newRAKBank(),

	// Ethiopia.
	newCBE(),
	newAwash(),
	newDashen(),
	newAbyssinia(),
	newTelebirr(),

	// Kenya.
	newMPesa(),
	newEquityBank(),
	newKCB(),

	// Egypt.
	newCIB(),
	newNBE(),

	// Pakistan.
	newHBL(),
	newMeezan(),
	newUBL(),
	newJazzCash(),
	newEasypaisa(),

	// Belarus.
	newBelarusbank(),
	newPriorbank(),

	// Nepal.
	newNICAsia(),
	newNabil(),
	newESewa(),
	newKhalti(),

	// Multi-currency.
	newWise(),
}

// Resolve returns the first parser claiming the sender, or nil when no
// institution recognizes it.
func Resolve(sender string) Parser {
	for _, p := range all {
		if p.CanHandle(sender) {
			return p
		}
	}
	return nil
}

// All returns the registered parsers in resolution order. Callers must
// not mutate the returned slice.
func All() []Parser {
	return all
}
